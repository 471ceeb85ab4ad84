package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// ErrDuplicateMember is returned when an insert violates the
// (workspace_id, user_id) uniqueness constraint. The constraint is the
// backstop for concurrent joins that both pass the existence check.
var ErrDuplicateMember = errors.New("member already exists for this workspace")

const uniqueViolationCode = "23505"

// MemberRepository handles membership data access
type MemberRepository struct {
	db *DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a membership row
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (id, user_id, workspace_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		member.ID,
		member.UserID,
		member.WorkspaceID,
		member.Role,
		member.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateMember
		}
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// Get retrieves the membership for a (user, workspace) pair
func (r *MemberRepository) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Member, error) {
	query := `
		SELECT id, user_id, workspace_id, role, joined_at
		FROM members
		WHERE user_id = $1 AND workspace_id = $2
	`

	var member domain.Member
	err := r.db.Pool.QueryRow(ctx, query, userID, workspaceID).Scan(
		&member.ID,
		&member.UserID,
		&member.WorkspaceID,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}

// ListByWorkspace retrieves all members of a workspace with user identity
func (r *MemberRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.MemberWithUser, error) {
	query := `
		SELECT m.id, m.user_id, m.workspace_id, m.role, m.joined_at, u.name, u.email
		FROM members m
		INNER JOIN users u ON u.id = m.user_id
		WHERE m.workspace_id = $1
		ORDER BY m.joined_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []domain.MemberWithUser
	for rows.Next() {
		var m domain.MemberWithUser
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.WorkspaceID,
			&m.Role,
			&m.JoinedAt,
			&m.UserName,
			&m.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, nil
}

// UpdateRole changes the role of an existing membership
func (r *MemberRepository) UpdateRole(ctx context.Context, userID, workspaceID uuid.UUID, role domain.RoleName) error {
	query := `
		UPDATE members SET role = $3
		WHERE user_id = $1 AND workspace_id = $2
	`

	_, err := r.db.Pool.Exec(ctx, query, userID, workspaceID, role)
	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	return nil
}

// Delete removes a membership
func (r *MemberRepository) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	query := `DELETE FROM members WHERE user_id = $1 AND workspace_id = $2`

	_, err := r.db.Pool.Exec(ctx, query, userID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}
