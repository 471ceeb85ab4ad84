package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/teamsynchq/teamsync/internal/api/middleware"
	"github.com/teamsynchq/teamsync/internal/api/response"
	"github.com/teamsynchq/teamsync/internal/domain"
	"github.com/teamsynchq/teamsync/internal/service"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func requestScope(w http.ResponseWriter, r *http.Request) (userID, workspaceID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	workspaceID, ok = middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, workspaceID, true
}

func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}

// Create handles project creation
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}

	var input domain.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if !validateInput(w, input) {
		return
	}

	project, err := h.projectService.Create(r.Context(), userID, workspaceID, input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, project)
}

// List handles listing projects in a workspace
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}

	limit, offset := pagination(r)

	projects, total, err := h.projectService.List(r.Context(), userID, workspaceID, limit, offset)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"projects": projects,
		"total":    total,
	})
}

func projectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		response.BadRequest(w, "invalid project ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// Get handles getting a project by ID
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	project, err := h.projectService.Get(r.Context(), userID, workspaceID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, project)
}

// Update handles updating a project
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var input domain.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if !validateInput(w, input) {
		return
	}

	project, err := h.projectService.Update(r.Context(), userID, workspaceID, id, input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, project)
}

// Delete handles deleting a project
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), userID, workspaceID, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}

// Analytics returns task-count aggregates for a project
func (h *ProjectHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requestScope(w, r)
	if !ok {
		return
	}
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	analytics, err := h.projectService.Analytics(r.Context(), userID, workspaceID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, analytics)
}
