package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teamsynchq/teamsync/internal/apperror"
	"github.com/teamsynchq/teamsync/internal/domain"
)

func TestGuard_Check(t *testing.T) {
	registry := NewRegistry()
	guard := NewGuard(registry)

	t.Run("empty requirement passes for every role", func(t *testing.T) {
		for _, role := range registry.Roles() {
			assert.NoError(t, guard.Check(role))
		}
	})

	t.Run("member cannot create a workspace", func(t *testing.T) {
		err := guard.Check(domain.RoleMember, domain.PermissionCreateWorkspace)
		assert.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeAccessUnauthorized))
	})

	t.Run("admin can manage projects but not delete the workspace", func(t *testing.T) {
		assert.NoError(t, guard.Check(domain.RoleAdmin,
			domain.PermissionCreateProject,
			domain.PermissionDeleteProject,
		))

		err := guard.Check(domain.RoleAdmin, domain.PermissionDeleteWorkspace)
		assert.True(t, apperror.IsCode(err, apperror.CodeAccessUnauthorized))
	})

	t.Run("owner passes the full permission set", func(t *testing.T) {
		perms, err := registry.Permissions(domain.RoleOwner)
		assert.NoError(t, err)
		assert.NoError(t, guard.Check(domain.RoleOwner, perms...))
	})

	t.Run("one missing permission fails the whole set", func(t *testing.T) {
		err := guard.Check(domain.RoleMember,
			domain.PermissionViewOnly,
			domain.PermissionDeleteProject,
		)
		assert.True(t, apperror.IsCode(err, apperror.CodeAccessUnauthorized))
	})

	t.Run("unknown role is a configuration error, not unauthorized", func(t *testing.T) {
		err := guard.Check("SUPERVISOR", domain.PermissionViewOnly)
		assert.True(t, apperror.IsCode(err, apperror.CodeRoleNotConfigured))
	})
}
