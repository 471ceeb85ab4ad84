package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups tasks inside a workspace
type Project struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Emoji       string    `json:"emoji"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectCreate represents project creation data
type ProjectCreate struct {
	Emoji       string `json:"emoji,omitempty" validate:"max=16"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"max=1024"`
}

// ProjectUpdate represents project update data
type ProjectUpdate struct {
	Emoji       *string `json:"emoji,omitempty" validate:"omitempty,max=16"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024"`
}

// ProjectAnalytics aggregates task counts for one project
type ProjectAnalytics struct {
	TotalTasks     int64 `json:"total_tasks"`
	OverdueTasks   int64 `json:"overdue_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`
}
