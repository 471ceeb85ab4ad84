package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teamsynchq/teamsync/internal/apperror"
	"github.com/teamsynchq/teamsync/internal/domain"
)

func TestRegistry_Permissions(t *testing.T) {
	registry := NewRegistry()

	t.Run("all roles registered", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]domain.RoleName{domain.RoleAdmin, domain.RoleMember, domain.RoleOwner},
			registry.Roles(),
		)
		for _, role := range registry.Roles() {
			perms, err := registry.Permissions(role)
			assert.NoError(t, err)
			assert.NotEmpty(t, perms)
		}
	})

	t.Run("owner holds every permission", func(t *testing.T) {
		perms, err := registry.Permissions(domain.RoleOwner)
		assert.NoError(t, err)
		assert.Contains(t, perms, domain.PermissionDeleteWorkspace)
		assert.Contains(t, perms, domain.PermissionChangeMemberRole)
		assert.Contains(t, perms, domain.PermissionCreateWorkspace)
	})

	t.Run("member is restricted", func(t *testing.T) {
		perms, err := registry.Permissions(domain.RoleMember)
		assert.NoError(t, err)
		assert.NotContains(t, perms, domain.PermissionCreateWorkspace)
		assert.NotContains(t, perms, domain.PermissionDeleteWorkspace)
		assert.Contains(t, perms, domain.PermissionViewOnly)
	})

	t.Run("unregistered role is a configuration error", func(t *testing.T) {
		_, err := registry.Permissions("SUPERVISOR")
		assert.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeRoleNotConfigured))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		perms, _ := registry.Permissions(domain.RoleMember)
		perms[0] = domain.PermissionDeleteWorkspace

		again, _ := registry.Permissions(domain.RoleMember)
		assert.NotContains(t, again, domain.PermissionDeleteWorkspace)
	})
}
