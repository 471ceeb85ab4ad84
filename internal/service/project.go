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

// ProjectService handles workspace-scoped project operations
type ProjectService struct {
	projectStore   ProjectStore
	resolver       RoleResolver
	guard          *authz.Guard
	analyticsCache AnalyticsCache
}

// NewProjectService creates a new project service
func NewProjectService(
	projectStore ProjectStore,
	resolver RoleResolver,
	guard *authz.Guard,
	analyticsCache AnalyticsCache,
) *ProjectService {
	return &ProjectService{
		projectStore:   projectStore,
		resolver:       resolver,
		guard:          guard,
		analyticsCache: analyticsCache,
	}
}

func (s *ProjectService) authorize(ctx context.Context, userID, workspaceID uuid.UUID, required ...domain.Permission) error {
	role, err := s.resolver.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	return s.guard.Check(role, required...)
}

// Create creates a project in a workspace
func (s *ProjectService) Create(ctx context.Context, userID, workspaceID uuid.UUID, input domain.ProjectCreate) (*domain.Project, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionCreateProject); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &domain.Project{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Emoji:       input.Emoji,
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectStore.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// List retrieves projects in a workspace, paginated
func (s *ProjectService) List(ctx context.Context, userID, workspaceID uuid.UUID, limit, offset int) ([]domain.Project, int64, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionViewOnly); err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	projects, total, err := s.projectStore.ListByWorkspace(ctx, workspaceID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, nil
}

// Get retrieves a single project
func (s *ProjectService) Get(ctx context.Context, userID, workspaceID, projectID uuid.UUID) (*domain.Project, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionViewOnly); err != nil {
		return nil, err
	}

	project, err := s.projectStore.GetByID(ctx, workspaceID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apperror.NotFound("project not found")
	}

	return project, nil
}

// Update updates a project
func (s *ProjectService) Update(ctx context.Context, userID, workspaceID, projectID uuid.UUID, input domain.ProjectUpdate) (*domain.Project, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionEditProject); err != nil {
		return nil, err
	}

	existing, err := s.projectStore.GetByID(ctx, workspaceID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("project not found")
	}

	if err := s.projectStore.Update(ctx, workspaceID, projectID, &input); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.projectStore.GetByID(ctx, workspaceID, projectID)
}

// Delete deletes a project and its tasks
func (s *ProjectService) Delete(ctx context.Context, userID, workspaceID, projectID uuid.UUID) error {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionDeleteProject); err != nil {
		return err
	}

	existing, err := s.projectStore.GetByID(ctx, workspaceID, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if existing == nil {
		return apperror.NotFound("project not found")
	}

	if err := s.projectStore.Delete(ctx, workspaceID, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	// Deleting a project removes its tasks, so workspace aggregates change.
	if s.analyticsCache != nil {
		if err := s.analyticsCache.Invalidate(ctx, workspaceID); err != nil {
			log.Warn().Err(err).Str("workspace_id", workspaceID.String()).Msg("failed to invalidate analytics cache")
		}
	}

	return nil
}

// Analytics returns task-count aggregates for one project
func (s *ProjectService) Analytics(ctx context.Context, userID, workspaceID, projectID uuid.UUID) (*domain.ProjectAnalytics, error) {
	if err := s.authorize(ctx, userID, workspaceID, domain.PermissionViewOnly); err != nil {
		return nil, err
	}

	existing, err := s.projectStore.GetByID(ctx, workspaceID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("project not found")
	}

	analytics, err := s.projectStore.Analytics(ctx, workspaceID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project analytics: %w", err)
	}

	return analytics, nil
}
