package authz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// RoleStore is the persistence surface the seeder needs
type RoleStore interface {
	GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) error
}

// Seed persists the registry into storage. Seeding is idempotent:
// existing roles are left untouched, so re-running never clobbers
// operator data. When a stored permission set has drifted from the
// registry the drift is logged, since a re-seed will not repair it.
func Seed(ctx context.Context, store RoleStore, registry *Registry, logger zerolog.Logger) error {
	for _, name := range registry.Roles() {
		perms, err := registry.Permissions(name)
		if err != nil {
			return err
		}

		existing, err := store.GetByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to look up role %s: %w", name, err)
		}

		if existing != nil {
			if !samePermissions(existing.Permissions, perms) {
				logger.Warn().
					Str("role", string(name)).
					Msg("stored permissions differ from registry; re-seeding does not update existing roles")
			} else {
				logger.Info().Str("role", string(name)).Msg("role already seeded, skipping")
			}
			continue
		}

		now := time.Now()
		role := &domain.Role{
			ID:          uuid.New(),
			Name:        name,
			Permissions: perms,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := store.Create(ctx, role); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
		logger.Info().Str("role", string(name)).Int("permissions", len(perms)).Msg("role seeded")
	}

	return nil
}

func samePermissions(a, b []domain.Permission) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[domain.Permission]struct{}, len(a))
	for _, p := range a {
		set[p] = struct{}{}
	}
	for _, p := range b {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}
