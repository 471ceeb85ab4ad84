package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member binds a user to a workspace with a role.
// A (user, workspace) pair is unique; a user joins a workspace at most once.
type Member struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Role        RoleName  `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

// MemberWithUser is a membership row joined with user identity for listings
type MemberWithUser struct {
	Member
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// MemberRoleUpdate represents a role-change request for a workspace member
type MemberRoleUpdate struct {
	Role RoleName `json:"role" validate:"required,oneof=OWNER ADMIN MEMBER"`
}

// JoinResult is returned after redeeming an invite code
type JoinResult struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Role        RoleName  `json:"role"`
}
