package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// WorkspaceRepository handles workspace data access
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

const workspaceColumns = `id, name, description, owner_id, invite_code, created_at, updated_at`

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var ws domain.Workspace
	err := row.Scan(
		&ws.ID,
		&ws.Name,
		&ws.Description,
		&ws.OwnerID,
		&ws.InviteCode,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// CreateWithOwner creates a workspace, its owner membership, and points
// the owner's current workspace at it, all in one transaction.
func (r *WorkspaceRepository) CreateWithOwner(ctx context.Context, workspace *domain.Workspace, member *domain.Member) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO workspaces (id, name, description, owner_id, invite_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		workspace.ID,
		workspace.Name,
		workspace.Description,
		workspace.OwnerID,
		workspace.InviteCode,
		workspace.CreatedAt,
		workspace.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO members (id, user_id, workspace_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		member.ID,
		member.UserID,
		member.WorkspaceID,
		member.Role,
		member.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create owner membership: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET current_workspace_id = $2, updated_at = NOW() WHERE id = $1
	`, workspace.OwnerID, workspace.ID)
	if err != nil {
		return fmt.Errorf("failed to set current workspace: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit workspace creation: %w", err)
	}

	return nil
}

// GetByID retrieves a workspace by ID
func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE id = $1`

	ws, err := scanWorkspace(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return ws, nil
}

// GetByInviteCode retrieves a workspace by its invite code
func (r *WorkspaceRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE invite_code = $1`

	ws, err := scanWorkspace(r.db.Pool.QueryRow(ctx, query, inviteCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get workspace by invite code: %w", err)
	}

	return ws, nil
}

// ListByUserID retrieves all workspaces the user is a member of
func (r *WorkspaceRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Workspace, error) {
	query := `
		SELECT w.id, w.name, w.description, w.owner_id, w.invite_code, w.created_at, w.updated_at
		FROM workspaces w
		INNER JOIN members m ON w.id = m.workspace_id
		WHERE m.user_id = $1
		ORDER BY w.created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []domain.Workspace
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, *ws)
	}

	return workspaces, nil
}

// Update updates a workspace's name and description
func (r *WorkspaceRepository) Update(ctx context.Context, id uuid.UUID, update *domain.WorkspaceUpdate) error {
	query := `
		UPDATE workspaces
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Pool.Exec(ctx, query, id, update.Name, update.Description)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", err)
	}

	return nil
}

// SetInviteCode replaces the workspace invite code, invalidating the
// previous one for any unredeemed invites.
func (r *WorkspaceRepository) SetInviteCode(ctx context.Context, id uuid.UUID, inviteCode string) error {
	query := `UPDATE workspaces SET invite_code = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Pool.Exec(ctx, query, id, inviteCode)
	if err != nil {
		return fmt.Errorf("failed to set invite code: %w", err)
	}

	return nil
}

// Delete deletes a workspace. Members, projects, and tasks cascade at
// the schema level; users pointing at it as their current workspace are
// repointed to any other workspace they belong to.
func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE users u
		SET current_workspace_id = (
			SELECT m.workspace_id FROM members m
			WHERE m.user_id = u.id AND m.workspace_id <> $1
			ORDER BY m.joined_at DESC
			LIMIT 1
		),
		updated_at = NOW()
		WHERE u.current_workspace_id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to repoint current workspaces: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit workspace deletion: %w", err)
	}

	return nil
}
