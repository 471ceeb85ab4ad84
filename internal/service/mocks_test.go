package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) SetCurrentWorkspace(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) error {
	args := m.Called(ctx, userID, workspaceID)
	return args.Error(0)
}

// MockWorkspaceStore mocks the WorkspaceStore interface
type MockWorkspaceStore struct {
	mock.Mock
}

func (m *MockWorkspaceStore) CreateWithOwner(ctx context.Context, workspace *domain.Workspace, member *domain.Member) error {
	args := m.Called(ctx, workspace, member)
	return args.Error(0)
}

func (m *MockWorkspaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceStore) GetByInviteCode(ctx context.Context, inviteCode string) (*domain.Workspace, error) {
	args := m.Called(ctx, inviteCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceStore) Update(ctx context.Context, id uuid.UUID, update *domain.WorkspaceUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockWorkspaceStore) SetInviteCode(ctx context.Context, id uuid.UUID, inviteCode string) error {
	args := m.Called(ctx, id, inviteCode)
	return args.Error(0)
}

func (m *MockWorkspaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMemberStore mocks the MemberStore interface
type MockMemberStore struct {
	mock.Mock
}

func (m *MockMemberStore) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberStore) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Member, error) {
	args := m.Called(ctx, userID, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.MemberWithUser, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberWithUser), args.Error(1)
}

func (m *MockMemberStore) UpdateRole(ctx context.Context, userID, workspaceID uuid.UUID, role domain.RoleName) error {
	args := m.Called(ctx, userID, workspaceID, role)
	return args.Error(0)
}

func (m *MockMemberStore) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	args := m.Called(ctx, userID, workspaceID)
	return args.Error(0)
}

// MockRoleStore mocks the RoleStore interface
type MockRoleStore struct {
	mock.Mock
}

func (m *MockRoleStore) GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

// MockProjectStore mocks the ProjectStore interface
type MockProjectStore struct {
	mock.Mock
}

func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectStore) GetByID(ctx context.Context, workspaceID, projectID uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, workspaceID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]domain.Project, int64, error) {
	args := m.Called(ctx, workspaceID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectStore) Update(ctx context.Context, workspaceID, projectID uuid.UUID, update *domain.ProjectUpdate) error {
	args := m.Called(ctx, workspaceID, projectID, update)
	return args.Error(0)
}

func (m *MockProjectStore) Delete(ctx context.Context, workspaceID, projectID uuid.UUID) error {
	args := m.Called(ctx, workspaceID, projectID)
	return args.Error(0)
}

func (m *MockProjectStore) Analytics(ctx context.Context, workspaceID, projectID uuid.UUID) (*domain.ProjectAnalytics, error) {
	args := m.Called(ctx, workspaceID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectAnalytics), args.Error(1)
}

// MockTaskStore mocks the TaskStore interface
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskStore) GetByID(ctx context.Context, workspaceID, taskID uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, workspaceID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) List(ctx context.Context, workspaceID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, int64, error) {
	args := m.Called(ctx, workspaceID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Task), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaskStore) Update(ctx context.Context, workspaceID, taskID uuid.UUID, update *domain.TaskUpdate) error {
	args := m.Called(ctx, workspaceID, taskID, update)
	return args.Error(0)
}

func (m *MockTaskStore) Delete(ctx context.Context, workspaceID, taskID uuid.UUID) error {
	args := m.Called(ctx, workspaceID, taskID)
	return args.Error(0)
}

func (m *MockTaskStore) WorkspaceAnalytics(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceAnalytics, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceAnalytics), args.Error(1)
}

// MockAnalyticsCache mocks the AnalyticsCache interface
type MockAnalyticsCache struct {
	mock.Mock
}

func (m *MockAnalyticsCache) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceAnalytics, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceAnalytics), args.Error(1)
}

func (m *MockAnalyticsCache) Set(ctx context.Context, workspaceID uuid.UUID, analytics *domain.WorkspaceAnalytics) error {
	args := m.Called(ctx, workspaceID, analytics)
	return args.Error(0)
}

func (m *MockAnalyticsCache) Invalidate(ctx context.Context, workspaceID uuid.UUID) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// MockRoleResolver mocks the RoleResolver interface
type MockRoleResolver struct {
	mock.Mock
}

func (m *MockRoleResolver) ResolveRole(ctx context.Context, userID, workspaceID uuid.UUID) (domain.RoleName, error) {
	args := m.Called(ctx, userID, workspaceID)
	return args.Get(0).(domain.RoleName), args.Error(1)
}
