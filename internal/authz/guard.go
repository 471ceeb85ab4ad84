package authz

import (
	"github.com/teamsynchq/teamsync/internal/apperror"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// Guard checks a resolved role against required permissions. It is a
// pure function over the registry; it holds no per-request state and
// must be re-evaluated on every request.
type Guard struct {
	registry *Registry
}

// NewGuard creates a guard over the given registry
func NewGuard(registry *Registry) *Guard {
	return &Guard{registry: registry}
}

// Check fails with an unauthorized error unless every required
// permission is present in the role's permission set. An empty
// requirement always passes.
func (g *Guard) Check(role domain.RoleName, required ...domain.Permission) error {
	perms, err := g.registry.Permissions(role)
	if err != nil {
		return err
	}

	held := make(map[domain.Permission]struct{}, len(perms))
	for _, p := range perms {
		held[p] = struct{}{}
	}

	for _, p := range required {
		if _, ok := held[p]; !ok {
			return apperror.Unauthorized("you do not have the necessary permission to perform this action")
		}
	}

	return nil
}
