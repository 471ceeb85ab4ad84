package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamsynchq/teamsync/internal/apperror"
	"github.com/teamsynchq/teamsync/internal/authz"
	"github.com/teamsynchq/teamsync/internal/domain"
	"github.com/teamsynchq/teamsync/internal/repository/postgres"
)

// MemberService is the membership core: it resolves a caller's role in
// a workspace and runs the invite-code join flow.
type MemberService struct {
	workspaceStore WorkspaceStore
	memberStore    MemberStore
	roleStore      RoleStore
	registry       *authz.Registry
	guard          *authz.Guard
}

// NewMemberService creates a new member service
func NewMemberService(
	workspaceStore WorkspaceStore,
	memberStore MemberStore,
	roleStore RoleStore,
	registry *authz.Registry,
	guard *authz.Guard,
) *MemberService {
	return &MemberService{
		workspaceStore: workspaceStore,
		memberStore:    memberStore,
		roleStore:      roleStore,
		registry:       registry,
		guard:          guard,
	}
}

// ResolveRole returns the caller's role in a workspace. A missing
// workspace is not-found; a missing membership is unauthorized, since
// the workspace exists but the caller is not entitled to it. The lookup
// runs on every authorization-sensitive request; nothing is cached.
func (s *MemberService) ResolveRole(ctx context.Context, userID, workspaceID uuid.UUID) (domain.RoleName, error) {
	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		return "", fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return "", apperror.NotFound("workspace not found")
	}

	member, err := s.memberStore.Get(ctx, userID, workspaceID)
	if err != nil {
		return "", fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return "", apperror.Unauthorized("you are not a member of this workspace")
	}

	return member.Role, nil
}

// JoinByInvite redeems an invite code and creates a membership with the
// default MEMBER role. Uniqueness is keyed on the (user, workspace)
// pair: a user may join any number of workspaces, but each at most
// once. The members table's composite unique index backstops the
// existence check against concurrent joins.
func (s *MemberService) JoinByInvite(ctx context.Context, userID uuid.UUID, inviteCode string) (*domain.JoinResult, error) {
	workspace, err := s.workspaceStore.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace by invite code: %w", err)
	}
	if workspace == nil {
		return nil, apperror.NotFound("invalid invite code or workspace not found")
	}

	existing, err := s.memberStore.Get(ctx, userID, workspace.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("you are already a member of this workspace")
	}

	role, err := s.roleStore.GetByName(ctx, domain.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to get default role: %w", err)
	}
	if role == nil {
		return nil, apperror.Configuration("default role MEMBER is not seeded")
	}

	member := &domain.Member{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspace.ID,
		Role:        role.Name,
		JoinedAt:    time.Now(),
	}

	if err := s.memberStore.Create(ctx, member); err != nil {
		if errors.Is(err, postgres.ErrDuplicateMember) {
			return nil, apperror.Conflict("you are already a member of this workspace")
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return &domain.JoinResult{
		WorkspaceID: workspace.ID,
		Role:        member.Role,
	}, nil
}

// ListMembers returns the members of a workspace with user identity
func (s *MemberService) ListMembers(ctx context.Context, requesterID, workspaceID uuid.UUID) ([]domain.MemberWithUser, error) {
	role, err := s.ResolveRole(ctx, requesterID, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Check(role, domain.PermissionViewOnly); err != nil {
		return nil, err
	}

	members, err := s.memberStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// ChangeRole changes a member's role. The new role must be registered,
// the target must already be a member, and the workspace owner's role
// cannot be changed.
func (s *MemberService) ChangeRole(ctx context.Context, requesterID, workspaceID, targetUserID uuid.UUID, newRole domain.RoleName) (*domain.Member, error) {
	requesterRole, err := s.ResolveRole(ctx, requesterID, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Check(requesterRole, domain.PermissionChangeMemberRole); err != nil {
		return nil, err
	}

	if !s.registry.IsRegistered(newRole) {
		return nil, apperror.Validation(map[string]string{"role": "unknown role"})
	}

	target, err := s.memberStore.Get(ctx, targetUserID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target member: %w", err)
	}
	if target == nil {
		return nil, apperror.NotFound("member not found in this workspace")
	}
	if target.Role == domain.RoleOwner {
		return nil, apperror.Unauthorized("the workspace owner's role cannot be changed")
	}

	if err := s.memberStore.UpdateRole(ctx, targetUserID, workspaceID, newRole); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	target.Role = newRole
	return target, nil
}

// RemoveMember removes a member from a workspace. The workspace owner
// cannot be removed.
func (s *MemberService) RemoveMember(ctx context.Context, requesterID, workspaceID, targetUserID uuid.UUID) error {
	requesterRole, err := s.ResolveRole(ctx, requesterID, workspaceID)
	if err != nil {
		return err
	}
	if err := s.guard.Check(requesterRole, domain.PermissionRemoveMember); err != nil {
		return err
	}

	target, err := s.memberStore.Get(ctx, targetUserID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get target member: %w", err)
	}
	if target == nil {
		return apperror.NotFound("member not found in this workspace")
	}
	if target.Role == domain.RoleOwner {
		return apperror.Unauthorized("the workspace owner cannot be removed")
	}

	if err := s.memberStore.Delete(ctx, targetUserID, workspaceID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}
