// Package authz implements the role-permission registry and the guard
// that workspace-scoped operations consult before mutating state.
package authz

import (
	"fmt"
	"sort"

	"github.com/teamsynchq/teamsync/internal/apperror"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// Registry maps role names to permission sets. It is built once at
// process start and never mutated afterwards; lookups return copies.
type Registry struct {
	roles map[domain.RoleName][]domain.Permission
}

// NewRegistry builds the registry with the seeded role definitions
func NewRegistry() *Registry {
	return &Registry{
		roles: map[domain.RoleName][]domain.Permission{
			domain.RoleOwner: {
				domain.PermissionCreateWorkspace,
				domain.PermissionDeleteWorkspace,
				domain.PermissionEditWorkspace,
				domain.PermissionManageWorkspaceSettings,
				domain.PermissionAddMember,
				domain.PermissionChangeMemberRole,
				domain.PermissionRemoveMember,
				domain.PermissionCreateProject,
				domain.PermissionEditProject,
				domain.PermissionDeleteProject,
				domain.PermissionCreateTask,
				domain.PermissionEditTask,
				domain.PermissionDeleteTask,
				domain.PermissionViewOnly,
			},
			domain.RoleAdmin: {
				domain.PermissionAddMember,
				domain.PermissionManageWorkspaceSettings,
				domain.PermissionCreateProject,
				domain.PermissionEditProject,
				domain.PermissionDeleteProject,
				domain.PermissionCreateTask,
				domain.PermissionEditTask,
				domain.PermissionDeleteTask,
				domain.PermissionViewOnly,
			},
			domain.RoleMember: {
				domain.PermissionViewOnly,
				domain.PermissionCreateTask,
				domain.PermissionEditTask,
			},
		},
	}
}

// Permissions returns the permission set for a role.
// An unregistered role is an operational defect, not a user error.
func (r *Registry) Permissions(role domain.RoleName) ([]domain.Permission, error) {
	perms, ok := r.roles[role]
	if !ok {
		return nil, apperror.Configuration(fmt.Sprintf("role %q is not registered", role))
	}
	out := make([]domain.Permission, len(perms))
	copy(out, perms)
	return out, nil
}

// Roles returns the registered role names in stable order
func (r *Registry) Roles() []domain.RoleName {
	names := make([]domain.RoleName, 0, len(r.roles))
	for name := range r.roles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// IsRegistered reports whether a role exists in the registry
func (r *Registry) IsRegistered(role domain.RoleName) bool {
	_, ok := r.roles[role]
	return ok
}
