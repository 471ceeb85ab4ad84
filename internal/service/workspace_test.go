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

func newWorkspaceService(
	workspaceStore *MockWorkspaceStore,
	taskStore *MockTaskStore,
	resolver *MockRoleResolver,
	cache *MockAnalyticsCache,
) *WorkspaceService {
	guard := authz.NewGuard(authz.NewRegistry())
	return NewWorkspaceService(workspaceStore, taskStore, resolver, guard, cache)
}

func TestWorkspaceService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockWorkspaceStore := new(MockWorkspaceStore)
	svc := newWorkspaceService(mockWorkspaceStore, new(MockTaskStore), new(MockRoleResolver), new(MockAnalyticsCache))

	mockWorkspaceStore.On("CreateWithOwner", ctx,
		mock.AnythingOfType("*domain.Workspace"),
		mock.AnythingOfType("*domain.Member"),
	).Return(nil)

	workspace, err := svc.Create(ctx, userID, domain.WorkspaceCreate{Name: "Engineering"})
	assert.NoError(t, err)
	assert.Equal(t, "Engineering", workspace.Name)
	assert.Equal(t, userID, workspace.OwnerID)
	assert.Len(t, workspace.InviteCode, 8)

	// The creator joins as OWNER in the same call.
	member := mockWorkspaceStore.Calls[0].Arguments.Get(2).(*domain.Member)
	assert.Equal(t, domain.RoleOwner, member.Role)
	assert.Equal(t, userID, member.UserID)
	assert.Equal(t, workspace.ID, member.WorkspaceID)
}

func TestWorkspaceService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()
	name := "Renamed"

	t.Run("owner can edit", func(t *testing.T) {
		mockWorkspaceStore := new(MockWorkspaceStore)
		mockResolver := new(MockRoleResolver)
		svc := newWorkspaceService(mockWorkspaceStore, new(MockTaskStore), mockResolver, new(MockAnalyticsCache))

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleOwner, nil)
		mockWorkspaceStore.On("Update", ctx, workspaceID, mock.AnythingOfType("*domain.WorkspaceUpdate")).Return(nil)
		mockWorkspaceStore.On("GetByID", ctx, workspaceID).Return(&domain.Workspace{ID: workspaceID, Name: name}, nil)

		workspace, err := svc.Update(ctx, userID, workspaceID, domain.WorkspaceUpdate{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, name, workspace.Name)
	})

	t.Run("admin cannot edit workspace", func(t *testing.T) {
		mockResolver := new(MockRoleResolver)
		svc := newWorkspaceService(new(MockWorkspaceStore), new(MockTaskStore), mockResolver, new(MockAnalyticsCache))

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleAdmin, nil)

		_, err := svc.Update(ctx, userID, workspaceID, domain.WorkspaceUpdate{Name: &name})
		assert.True(t, apperror.IsCode(err, apperror.CodeAccessUnauthorized))
	})
}

func TestWorkspaceService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()

	t.Run("only owner role carries delete", func(t *testing.T) {
		mockResolver := new(MockRoleResolver)
		svc := newWorkspaceService(new(MockWorkspaceStore), new(MockTaskStore), mockResolver, new(MockAnalyticsCache))

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleAdmin, nil)

		err := svc.Delete(ctx, userID, workspaceID)
		assert.True(t, apperror.IsCode(err, apperror.CodeAccessUnauthorized))
	})

	t.Run("delete invalidates the analytics cache", func(t *testing.T) {
		mockWorkspaceStore := new(MockWorkspaceStore)
		mockResolver := new(MockRoleResolver)
		mockCache := new(MockAnalyticsCache)
		svc := newWorkspaceService(mockWorkspaceStore, new(MockTaskStore), mockResolver, mockCache)

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleOwner, nil)
		mockWorkspaceStore.On("Delete", ctx, workspaceID).Return(nil)
		mockCache.On("Invalidate", ctx, workspaceID).Return(nil)

		err := svc.Delete(ctx, userID, workspaceID)
		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
	})
}

func TestWorkspaceService_ResetInviteCode(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()

	mockWorkspaceStore := new(MockWorkspaceStore)
	mockResolver := new(MockRoleResolver)
	svc := newWorkspaceService(mockWorkspaceStore, new(MockTaskStore), mockResolver, new(MockAnalyticsCache))

	mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleOwner, nil)
	mockWorkspaceStore.On("SetInviteCode", ctx, workspaceID, mock.AnythingOfType("string")).Return(nil)
	mockWorkspaceStore.On("GetByID", ctx, workspaceID).Return(&domain.Workspace{ID: workspaceID, InviteCode: "9f8e7d6c"}, nil)

	workspace, err := svc.ResetInviteCode(ctx, userID, workspaceID)
	assert.NoError(t, err)
	assert.Equal(t, "9f8e7d6c", workspace.InviteCode)

	newCode := mockWorkspaceStore.Calls[0].Arguments.String(2)
	assert.Len(t, newCode, 8)
}

func TestWorkspaceService_Analytics(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()
	analytics := &domain.WorkspaceAnalytics{TotalTasks: 10, OverdueTasks: 2, CompletedTasks: 5}

	t.Run("cache miss falls through to the store", func(t *testing.T) {
		mockTaskStore := new(MockTaskStore)
		mockResolver := new(MockRoleResolver)
		mockCache := new(MockAnalyticsCache)
		svc := newWorkspaceService(new(MockWorkspaceStore), mockTaskStore, mockResolver, mockCache)

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleMember, nil)
		mockCache.On("Get", ctx, workspaceID).Return(nil, nil)
		mockTaskStore.On("WorkspaceAnalytics", ctx, workspaceID).Return(analytics, nil)
		mockCache.On("Set", ctx, workspaceID, analytics).Return(nil)

		got, err := svc.Analytics(ctx, userID, workspaceID)
		assert.NoError(t, err)
		assert.Equal(t, analytics, got)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockTaskStore := new(MockTaskStore)
		mockResolver := new(MockRoleResolver)
		mockCache := new(MockAnalyticsCache)
		svc := newWorkspaceService(new(MockWorkspaceStore), mockTaskStore, mockResolver, mockCache)

		mockResolver.On("ResolveRole", ctx, userID, workspaceID).Return(domain.RoleMember, nil)
		mockCache.On("Get", ctx, workspaceID).Return(analytics, nil)

		got, err := svc.Analytics(ctx, userID, workspaceID)
		assert.NoError(t, err)
		assert.Equal(t, analytics, got)
		mockTaskStore.AssertNotCalled(t, "WorkspaceAnalytics", ctx, workspaceID)
	})
}
