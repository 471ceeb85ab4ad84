package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/teamsynchq/teamsync/internal/apperror"
	"github.com/teamsynchq/teamsync/internal/authz"
	"github.com/teamsynchq/teamsync/internal/domain"
)

func newTaskService(
	taskStore *MockTaskStore,
	projectStore *MockProjectStore,
	memberStore *MockMemberStore,
	resolver *MockRoleResolver,
	cache *MockAnalyticsCache,
) *TaskService {
	guard := authz.NewGuard(authz.NewRegistry())
	return NewTaskService(taskStore, projectStore, memberStore, resolver, guard, cache)
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()
	projectID := uuid.New()
	project := &domain.Project{ID: projectID, WorkspaceID: workspaceID}

	t.Run("member creates a task with defaults", func(t *testing.T) {
		mockTaskStore := new(MockTaskStore)
		mockProjectStore := new(MockProjectStore)
		mockResolver := new(MockRoleResolver)
		mockCache := new(MockAnalyticsCache)
		svc := newTaskService(mockTaskStore, mockProjectStore, new(MockMemberStore), mockResolver, mockCache)

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleMember, nil)
		mockProjectStore.On("GetByID", ctx, workspaceID, projectID).Return(project, nil)
		mockTaskStore.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)
		mockCache.On("Invalidate", ctx, workspaceID).Return(nil)

		task, err := svc.Create(ctx, userID, workspaceID, domain.TaskCreate{
			ProjectID: projectID,
			Title:     "Write release notes",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusTodo, task.Status)
		assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
		assert.Regexp(t, `^task-[0-9a-f]{3}$`, task.TaskCode)
		mockCache.AssertExpectations(t)
	})

	t.Run("unknown project", func(t *testing.T) {
		mockProjectStore := new(MockProjectStore)
		mockResolver := new(MockRoleResolver)
		svc := newTaskService(new(MockTaskStore), mockProjectStore, new(MockMemberStore), mockResolver, new(MockAnalyticsCache))

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleMember, nil)
		mockProjectStore.On("GetByID", ctx, workspaceID, projectID).Return(nil, nil)

		_, err := svc.Create(ctx, userID, workspaceID, domain.TaskCreate{ProjectID: projectID, Title: "x"})
		assert.True(t, apperror.IsCode(err, apperror.CodeResourceNotFound))
	})

	t.Run("assignee must be a workspace member", func(t *testing.T) {
		outsider := uuid.New()
		mockProjectStore := new(MockProjectStore)
		mockMemberStore := new(MockMemberStore)
		mockResolver := new(MockRoleResolver)
		svc := newTaskService(new(MockTaskStore), mockProjectStore, mockMemberStore, mockResolver, new(MockAnalyticsCache))

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleMember, nil)
		mockProjectStore.On("GetByID", ctx, workspaceID, projectID).Return(project, nil)
		mockMemberStore.On("Get", ctx, outsider, workspaceID).Return(nil, nil)

		_, err := svc.Create(ctx, userID, workspaceID, domain.TaskCreate{
			ProjectID:  projectID,
			Title:      "x",
			AssignedTo: &outsider,
		})
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()
	taskID := uuid.New()

	t.Run("member cannot delete", func(t *testing.T) {
		mockResolver := new(MockRoleResolver)
		svc := newTaskService(new(MockTaskStore), new(MockProjectStore), new(MockMemberStore), mockResolver, new(MockAnalyticsCache))

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleMember, nil)

		err := svc.Delete(ctx, userID, workspaceID, taskID)
		assert.True(t, apperror.IsCode(err, apperror.CodeAccessUnauthorized))
	})

	t.Run("admin deletes and invalidates analytics", func(t *testing.T) {
		mockTaskStore := new(MockTaskStore)
		mockResolver := new(MockRoleResolver)
		mockCache := new(MockAnalyticsCache)
		svc := newTaskService(mockTaskStore, new(MockProjectStore), new(MockMemberStore), mockResolver, mockCache)

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleAdmin, nil)
		mockTaskStore.On("GetByID", ctx, workspaceID, taskID).Return(&domain.Task{ID: taskID}, nil)
		mockTaskStore.On("Delete", ctx, workspaceID, taskID).Return(nil)
		mockCache.On("Invalidate", ctx, workspaceID).Return(nil)

		err := svc.Delete(ctx, userID, workspaceID, taskID)
		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
	})
}
