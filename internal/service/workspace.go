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

// WorkspaceService handles workspace operations
type WorkspaceService struct {
	workspaceStore WorkspaceStore
	taskStore      TaskStore
	resolver       RoleResolver
	guard          *authz.Guard
	analyticsCache AnalyticsCache
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	workspaceStore WorkspaceStore,
	taskStore TaskStore,
	resolver RoleResolver,
	guard *authz.Guard,
	analyticsCache AnalyticsCache,
) *WorkspaceService {
	return &WorkspaceService{
		workspaceStore: workspaceStore,
		taskStore:      taskStore,
		resolver:       resolver,
		guard:          guard,
		analyticsCache: analyticsCache,
	}
}

// Create creates a workspace, auto-joins the creator as OWNER, and
// makes it the creator's current workspace. Creation is not
// workspace-scoped, so no permission check applies.
func (s *WorkspaceService) Create(ctx context.Context, userID uuid.UUID, input domain.WorkspaceCreate) (*domain.Workspace, error) {
	now := time.Now()
	workspace := &domain.Workspace{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     userID,
		InviteCode:  domain.NewInviteCode(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	member := &domain.Member{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspace.ID,
		Role:        domain.RoleOwner,
		JoinedAt:    now,
	}

	if err := s.workspaceStore.CreateWithOwner(ctx, workspace, member); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	return workspace, nil
}

// ListByUser retrieves all workspaces the user is a member of
func (s *WorkspaceService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceStore.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// Get retrieves a workspace after resolving the caller's membership
func (s *WorkspaceService) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Workspace, error) {
	if _, err := s.resolver.ResolveRole(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, apperror.NotFound("workspace not found")
	}

	return workspace, nil
}

// Update updates workspace name and description
func (s *WorkspaceService) Update(ctx context.Context, userID, workspaceID uuid.UUID, input domain.WorkspaceUpdate) (*domain.Workspace, error) {
	role, err := s.resolver.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Check(role, domain.PermissionEditWorkspace); err != nil {
		return nil, err
	}

	if err := s.workspaceStore.Update(ctx, workspaceID, &input); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return workspace, nil
}

// Delete deletes a workspace and everything in it
func (s *WorkspaceService) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	role, err := s.resolver.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	if err := s.guard.Check(role, domain.PermissionDeleteWorkspace); err != nil {
		return err
	}

	if err := s.workspaceStore.Delete(ctx, workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	if s.analyticsCache != nil {
		if err := s.analyticsCache.Invalidate(ctx, workspaceID); err != nil {
			log.Warn().Err(err).Str("workspace_id", workspaceID.String()).Msg("failed to invalidate analytics cache")
		}
	}

	return nil
}

// ResetInviteCode regenerates the invite code, invalidating the prior
// code for any invite not yet redeemed
func (s *WorkspaceService) ResetInviteCode(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Workspace, error) {
	role, err := s.resolver.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Check(role, domain.PermissionManageWorkspaceSettings); err != nil {
		return nil, err
	}

	if err := s.workspaceStore.SetInviteCode(ctx, workspaceID, domain.NewInviteCode()); err != nil {
		return nil, fmt.Errorf("failed to reset invite code: %w", err)
	}

	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return workspace, nil
}

// Analytics returns task-count aggregates for a workspace, served from
// the short-TTL cache when possible
func (s *WorkspaceService) Analytics(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.WorkspaceAnalytics, error) {
	role, err := s.resolver.ResolveRole(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Check(role, domain.PermissionViewOnly); err != nil {
		return nil, err
	}

	if s.analyticsCache != nil {
		cached, err := s.analyticsCache.Get(ctx, workspaceID)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	analytics, err := s.taskStore.WorkspaceAnalytics(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace analytics: %w", err)
	}

	if s.analyticsCache != nil {
		if err := s.analyticsCache.Set(ctx, workspaceID, analytics); err != nil {
			log.Warn().Err(err).Str("workspace_id", workspaceID.String()).Msg("failed to cache analytics")
		}
	}

	return analytics, nil
}
