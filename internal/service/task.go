package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/teamsynchq/teamsync/internal/apperror"
	"github.com/teamsynchq/teamsync/internal/authz"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// TaskService handles workspace-scoped task operations
type TaskService struct {
	taskStore      TaskStore
	projectStore   ProjectStore
	memberStore    MemberStore
	resolver       RoleResolver
	guard          *authz.Guard
	analyticsCache AnalyticsCache
}

// NewTaskService creates a new task service
func NewTaskService(
	taskStore TaskStore,
	projectStore ProjectStore,
	memberStore MemberStore,
	resolver RoleResolver,
	guard *authz.Guard,
	analyticsCache AnalyticsCache,
) *TaskService {
	return &TaskService{
		taskStore:      taskStore,
		projectStore:   projectStore,
		memberStore:    memberStore,
		resolver:       resolver,
		guard:          guard,
		analyticsCache: analyticsCache,
	}
}

func (s *TaskService) authorize(ctx context.Context, userID, workspaceID uuid.UUID, required ...domain.Permission) error {
	role, err := s.resolver.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	return s.guard.Check(role, required...)
}

// assigneeIsMember verifies an assignee belongs to the workspace
func (s *TaskService) assigneeIsMember(ctx context.Context, workspaceID uuid.UUID, assignee *uuid.UUID) error {
	if assignee == nil {
		return nil
	}
	member, err := s.memberStore.Get(ctx, *assignee, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to check assignee membership: %w", err)
	}
	if member == nil {
		return apperror.Validation(map[string]string{
			"assigned_to": "assignee is not a member of this workspace",
		})
	}
	return nil
}

func (s *TaskService) invalidateAnalytics(ctx context.Context, workspaceID uuid.UUID) {
	if s.analyticsCache == nil {
		return
	}
	if err := s.analyticsCache.Invalidate(ctx, workspaceID); err != nil {
		log.Warn().Err(err).Str("workspace_id", workspaceID.String()).Msg("failed to invalidate analytics cache")
	}
}

// Create creates a task inside a project
func (s *TaskService) Create(ctx context.Context, userID, workspaceID uuid.UUID, input domain.TaskCreate) (*domain.Task, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionCreateTask); err != nil {
		return nil, err
	}

	project, err := s.projectStore.GetByID(ctx, workspaceID, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}

	if err := s.assigneeIsMember(ctx, workspaceID, input.AssignedTo); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New(),
		TaskCode:    domain.NewTaskCode(),
		WorkspaceID: workspaceID,
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.invalidateAnalytics(ctx, workspaceID)

	return task, nil
}

// List retrieves tasks in a workspace matching a filter
func (s *TaskService) List(ctx context.Context, userID, workspaceID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, int64, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionViewOnly); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	tasks, total, err := s.taskStore.List(ctx, workspaceID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// Get retrieves a single task
func (s *TaskService) Get(ctx context.Context, userID, workspaceID, taskID uuid.UUID) (*domain.Task, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionViewOnly); err != nil {
		return nil, err
	}

	task, err := s.taskStore.GetByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, apperror.NotFound("task not found")
	}

	return task, nil
}

// Update updates a task
func (s *TaskService) Update(ctx context.Context, userID, workspaceID, taskID uuid.UUID, input domain.TaskUpdate) (*domain.Task, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionEditTask); err != nil {
		return nil, err
	}

	existing, err := s.taskStore.GetByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("task not found")
	}

	if err := s.assigneeIsMember(ctx, workspaceID, input.AssignedTo); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, workspaceID, taskID, &input); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.invalidateAnalytics(ctx, workspaceID)

	return s.taskStore.GetByID(ctx, workspaceID, taskID)
}

// Delete deletes a task
func (s *TaskService) Delete(ctx context.Context, userID, workspaceID, taskID uuid.UUID) error {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionDeleteTask); err != nil {
		return err
	}

	existing, err := s.taskStore.GetByID(ctx, workspaceID, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if existing == nil {
		return apperror.NotFound("task not found")
	}

	if err := s.taskStore.Delete(ctx, workspaceID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.invalidateAnalytics(ctx, workspaceID)

	return nil
}
