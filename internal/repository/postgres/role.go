package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// RoleRepository handles seeded role data access
type RoleRepository struct {
	db *DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create persists a role with its permission set
func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	query := `
		INSERT INTO roles (id, name, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		role.ID,
		role.Name,
		permissionStrings(role.Permissions),
		role.CreatedAt,
		role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	return nil
}

// GetByName retrieves a role by name
func (r *RoleRepository) GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles
		WHERE name = $1
	`

	var role domain.Role
	var perms []string
	err := r.db.Pool.QueryRow(ctx, query, name).Scan(
		&role.ID,
		&role.Name,
		&perms,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	role.Permissions = make([]domain.Permission, len(perms))
	for i, p := range perms {
		role.Permissions[i] = domain.Permission(p)
	}

	return &role, nil
}

// List retrieves all seeded roles
func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	query := `
		SELECT id, name, permissions, created_at, updated_at
		FROM roles
		ORDER BY name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		var perms []string
		if err := rows.Scan(&role.ID, &role.Name, &perms, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		role.Permissions = make([]domain.Permission, len(perms))
		for i, p := range perms {
			role.Permissions[i] = domain.Permission(p)
		}
		roles = append(roles, role)
	}

	return roles, nil
}

func permissionStrings(perms []domain.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
