package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the workflow state of a task
type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "BACKLOG"
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskPriority is the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// Task is a unit of work inside a project
type Task struct {
	ID          uuid.UUID    `json:"id"`
	TaskCode    string       `json:"task_code"`
	WorkspaceID uuid.UUID    `json:"workspace_id"`
	ProjectID   uuid.UUID    `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssignedTo  *uuid.UUID   `json:"assigned_to,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedBy   uuid.UUID    `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskCreate represents task creation data
type TaskCreate struct {
	ProjectID   uuid.UUID    `json:"project_id" validate:"required"`
	Title       string       `json:"title" validate:"required,max=255"`
	Description string       `json:"description,omitempty" validate:"max=4096"`
	Status      TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=BACKLOG TODO IN_PROGRESS IN_REVIEW DONE"`
	Priority    TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	AssignedTo  *uuid.UUID   `json:"assigned_to,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
}

// TaskUpdate represents task update data
type TaskUpdate struct {
	Title       *string       `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string       `json:"description,omitempty" validate:"omitempty,max=4096"`
	Status      *TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=BACKLOG TODO IN_PROGRESS IN_REVIEW DONE"`
	Priority    *TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	AssignedTo  *uuid.UUID    `json:"assigned_to,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
}

// TaskFilter narrows task listings
type TaskFilter struct {
	ProjectID  *uuid.UUID
	Status     []TaskStatus
	Priority   []TaskPriority
	AssignedTo *uuid.UUID
	Keyword    string
	DueBefore  *time.Time
	Limit      int
	Offset     int
}

// NewTaskCode returns a short display code like "task-f3a"
func NewTaskCode() string {
	return "task-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:3]
}
