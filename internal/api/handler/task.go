package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/teamsynchq/teamsync/internal/api/response"
	"github.com/teamsynchq/teamsync/internal/domain"
	"github.com/teamsynchq/teamsync/internal/service"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles task creation
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}

	var input domain.TaskCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if !validateInput(w, input) {
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, workspaceID, input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, task)
}

// taskFilter builds a task filter from query parameters
func taskFilter(r *http.Request) domain.TaskFilter {
	q := r.URL.Query()
	filter := domain.TaskFilter{Keyword: q.Get("keyword")}

	if id, err := uuid.Parse(q.Get("project_id")); err == nil {
		filter.ProjectID = &id
	}
	if id, err := uuid.Parse(q.Get("assigned_to")); err == nil {
		filter.AssignedTo = &id
	}
	for _, s := range strings.Split(q.Get("status"), ",") {
		if s != "" {
			filter.Status = append(filter.Status, domain.TaskStatus(s))
		}
	}
	for _, p := range strings.Split(q.Get("priority"), ",") {
		if p != "" {
			filter.Priority = append(filter.Priority, domain.TaskPriority(p))
		}
	}
	if t, err := time.Parse(time.RFC3339, q.Get("due_before")); err == nil {
		filter.DueBefore = &t
	}
	filter.Limit, filter.Offset = pagination(r)

	return filter
}

// List handles listing tasks in a workspace with filters
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}

	tasks, total, err := h.taskService.List(r.Context(), userID, workspaceID, taskFilter(r))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"tasks": tasks,
		"total": total,
	})
}

func taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		response.BadRequest(w, "invalid task ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// Get handles getting a task by ID
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, workspaceID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, task)
}

// Update handles updating a task
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var input domain.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if !validateInput(w, input) {
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, workspaceID, id, input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, task)
}

// Delete handles deleting a task
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, workspaceID, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}
