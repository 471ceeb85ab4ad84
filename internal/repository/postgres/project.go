package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// ProjectRepository handles project data access
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, workspace_id, emoji, name, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		project.ID,
		project.WorkspaceID,
		project.Emoji,
		project.Name,
		project.Description,
		project.CreatedBy,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project scoped to a workspace
func (r *ProjectRepository) GetByID(ctx context.Context, workspaceID, projectID uuid.UUID) (*domain.Project, error) {
	query := `
		SELECT id, workspace_id, emoji, name, description, created_by, created_at, updated_at
		FROM projects
		WHERE id = $1 AND workspace_id = $2
	`

	var project domain.Project
	err := r.db.Pool.QueryRow(ctx, query, projectID, workspaceID).Scan(
		&project.ID,
		&project.WorkspaceID,
		&project.Emoji,
		&project.Name,
		&project.Description,
		&project.CreatedBy,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// ListByWorkspace retrieves projects in a workspace, newest first
func (r *ProjectRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]domain.Project, int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE workspace_id = $1`, workspaceID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := `
		SELECT id, workspace_id, emoji, name, description, created_by, created_at, updated_at
		FROM projects
		WHERE workspace_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.WorkspaceID,
			&project.Emoji,
			&project.Name,
			&project.Description,
			&project.CreatedBy,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, total, nil
}

// Update updates a project
func (r *ProjectRepository) Update(ctx context.Context, workspaceID, projectID uuid.UUID, update *domain.ProjectUpdate) error {
	query := `
		UPDATE projects
		SET emoji = COALESCE($3, emoji),
		    name = COALESCE($4, name),
		    description = COALESCE($5, description),
		    updated_at = NOW()
		WHERE id = $1 AND workspace_id = $2
	`

	_, err := r.db.Pool.Exec(ctx, query, projectID, workspaceID, update.Emoji, update.Name, update.Description)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// Delete deletes a project; its tasks cascade at the schema level
func (r *ProjectRepository) Delete(ctx context.Context, workspaceID, projectID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1 AND workspace_id = $2`

	_, err := r.db.Pool.Exec(ctx, query, projectID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// Analytics aggregates task counts for a project
func (r *ProjectRepository) Analytics(ctx context.Context, workspaceID, projectID uuid.UUID) (*domain.ProjectAnalytics, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE due_date < NOW() AND status <> 'DONE'),
			COUNT(*) FILTER (WHERE status = 'DONE')
		FROM tasks
		WHERE workspace_id = $1 AND project_id = $2
	`

	var analytics domain.ProjectAnalytics
	err := r.db.Pool.QueryRow(ctx, query, workspaceID, projectID).Scan(
		&analytics.TotalTasks,
		&analytics.OverdueTasks,
		&analytics.CompletedTasks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get project analytics: %w", err)
	}

	return &analytics, nil
}
