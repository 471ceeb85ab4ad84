package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/teamsynchq/teamsync/internal/domain"
)

// TaskRepository handles task data access
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, task_code, workspace_id, project_id, title, description, status, priority, assigned_to, due_date, created_by, created_at, updated_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.TaskCode,
		&task.WorkspaceID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.AssignedTo,
		&task.DueDate,
		&task.CreatedBy,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		task.ID,
		task.TaskCode,
		task.WorkspaceID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.AssignedTo,
		task.DueDate,
		task.CreatedBy,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task scoped to a workspace
func (r *TaskRepository) GetByID(ctx context.Context, workspaceID, taskID uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND workspace_id = $2`

	task, err := scanTask(r.db.Pool.QueryRow(ctx, query, taskID, workspaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// List retrieves tasks in a workspace matching the filter
func (r *TaskRepository) List(ctx context.Context, workspaceID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, int64, error) {
	conditions := []string{"workspace_id = $1"}
	args := []any{workspaceID}

	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ProjectID != nil {
		conditions = append(conditions, "project_id = "+addArg(*filter.ProjectID))
	}
	if len(filter.Status) > 0 {
		conditions = append(conditions, "status = ANY("+addArg(statusStrings(filter.Status))+")")
	}
	if len(filter.Priority) > 0 {
		conditions = append(conditions, "priority = ANY("+addArg(priorityStrings(filter.Priority))+")")
	}
	if filter.AssignedTo != nil {
		conditions = append(conditions, "assigned_to = "+addArg(*filter.AssignedTo))
	}
	if filter.Keyword != "" {
		conditions = append(conditions, "title ILIKE "+addArg("%"+filter.Keyword+"%"))
	}
	if filter.DueBefore != nil {
		conditions = append(conditions, "due_date <= "+addArg(*filter.DueBefore))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.db.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM tasks WHERE "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "SELECT " + taskColumns + " FROM tasks WHERE " + where +
		" ORDER BY created_at DESC LIMIT " + addArg(limit) + " OFFSET " + addArg(filter.Offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	return tasks, total, nil
}

// Update updates a task
func (r *TaskRepository) Update(ctx context.Context, workspaceID, taskID uuid.UUID, update *domain.TaskUpdate) error {
	query := `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    status = COALESCE($5, status),
		    priority = COALESCE($6, priority),
		    assigned_to = COALESCE($7, assigned_to),
		    due_date = COALESCE($8, due_date),
		    updated_at = NOW()
		WHERE id = $1 AND workspace_id = $2
	`

	_, err := r.db.Pool.Exec(ctx, query,
		taskID,
		workspaceID,
		update.Title,
		update.Description,
		update.Status,
		update.Priority,
		update.AssignedTo,
		update.DueDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// Delete deletes a task
func (r *TaskRepository) Delete(ctx context.Context, workspaceID, taskID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND workspace_id = $2`

	_, err := r.db.Pool.Exec(ctx, query, taskID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// WorkspaceAnalytics aggregates task counts across a workspace
func (r *TaskRepository) WorkspaceAnalytics(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceAnalytics, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE due_date < NOW() AND status <> 'DONE'),
			COUNT(*) FILTER (WHERE status = 'DONE')
		FROM tasks
		WHERE workspace_id = $1
	`

	var analytics domain.WorkspaceAnalytics
	err := r.db.Pool.QueryRow(ctx, query, workspaceID).Scan(
		&analytics.TotalTasks,
		&analytics.OverdueTasks,
		&analytics.CompletedTasks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace analytics: %w", err)
	}

	return &analytics, nil
}

func statusStrings(statuses []domain.TaskStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func priorityStrings(priorities []domain.TaskPriority) []string {
	out := make([]string, len(priorities))
	for i, p := range priorities {
		out[i] = string(p)
	}
	return out
}
