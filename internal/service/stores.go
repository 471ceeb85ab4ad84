package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// Store interfaces consumed by the services. The postgres repositories
// satisfy them; tests substitute testify mocks.

type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SetCurrentWorkspace(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) error
}

type WorkspaceStore interface {
	CreateWithOwner(ctx context.Context, workspace *domain.Workspace, member *domain.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*domain.Workspace, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Workspace, error)
	Update(ctx context.Context, id uuid.UUID, update *domain.WorkspaceUpdate) error
	SetInviteCode(ctx context.Context, id uuid.UUID, inviteCode string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberStore interface {
	Create(ctx context.Context, member *domain.Member) error
	Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Member, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.MemberWithUser, error)
	UpdateRole(ctx context.Context, userID, workspaceID uuid.UUID, role domain.RoleName) error
	Delete(ctx context.Context, userID, workspaceID uuid.UUID) error
}

type RoleStore interface {
	GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
}

type ProjectStore interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, workspaceID, projectID uuid.UUID) (*domain.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]domain.Project, int64, error)
	Update(ctx context.Context, workspaceID, projectID uuid.UUID, update *domain.ProjectUpdate) error
	Delete(ctx context.Context, workspaceID, projectID uuid.UUID) error
	Analytics(ctx context.Context, workspaceID, projectID uuid.UUID) (*domain.ProjectAnalytics, error)
}

type TaskStore interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, workspaceID, taskID uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, workspaceID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, int64, error)
	Update(ctx context.Context, workspaceID, taskID uuid.UUID, update *domain.TaskUpdate) error
	Delete(ctx context.Context, workspaceID, taskID uuid.UUID) error
	WorkspaceAnalytics(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceAnalytics, error)
}

// AnalyticsCache is the short-TTL aggregate cache backed by Redis
type AnalyticsCache interface {
	Get(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceAnalytics, error)
	Set(ctx context.Context, workspaceID uuid.UUID, analytics *domain.WorkspaceAnalytics) error
	Invalidate(ctx context.Context, workspaceID uuid.UUID) error
}

// RoleResolver resolves the caller's role for a workspace on every
// authorization-sensitive request
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID, workspaceID uuid.UUID) (domain.RoleName, error)
}
