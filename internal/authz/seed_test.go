package authz

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/teamsynchq/teamsync/internal/domain"
)

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

func (m *MockRoleStore) Create(ctx context.Context, role *domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func TestSeed_EmptyStore(t *testing.T) {
	registry := NewRegistry()
	store := new(MockRoleStore)
	ctx := context.Background()

	store.On("GetByName", ctx, mock.Anything).Return(nil, nil)
	store.On("Create", ctx, mock.AnythingOfType("*domain.Role")).Return(nil)

	err := Seed(ctx, store, registry, zerolog.Nop())
	assert.NoError(t, err)

	store.AssertNumberOfCalls(t, "Create", len(registry.Roles()))
}

func TestSeed_Idempotent(t *testing.T) {
	registry := NewRegistry()
	store := new(MockRoleStore)
	ctx := context.Background()

	// Every role already exists with registry-identical permissions.
	for _, name := range registry.Roles() {
		perms, _ := registry.Permissions(name)
		store.On("GetByName", ctx, name).Return(&domain.Role{
			Name:        name,
			Permissions: perms,
		}, nil)
	}

	err := Seed(ctx, store, registry, zerolog.Nop())
	assert.NoError(t, err)

	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeed_DriftedRoleIsNotOverwritten(t *testing.T) {
	registry := NewRegistry()
	store := new(MockRoleStore)
	ctx := context.Background()

	// MEMBER was seeded with an older, smaller permission set. A re-seed
	// must leave it alone.
	for _, name := range registry.Roles() {
		if name == domain.RoleMember {
			store.On("GetByName", ctx, name).Return(&domain.Role{
				Name:        name,
				Permissions: []domain.Permission{domain.PermissionViewOnly},
			}, nil)
			continue
		}
		perms, _ := registry.Permissions(name)
		store.On("GetByName", ctx, name).Return(&domain.Role{Name: name, Permissions: perms}, nil)
	}

	err := Seed(ctx, store, registry, zerolog.Nop())
	assert.NoError(t, err)

	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
