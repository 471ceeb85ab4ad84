package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/teamsynchq/teamsync/internal/api/middleware"
	"github.com/teamsynchq/teamsync/internal/api/response"
	"github.com/teamsynchq/teamsync/internal/domain"
	"github.com/teamsynchq/teamsync/internal/service"
)

// MemberHandler handles workspace membership endpoints
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Join redeems an invite code and adds the caller to the workspace
func (h *MemberHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	inviteCode := chi.URLParam(r, "inviteCode")
	if inviteCode == "" {
		response.BadRequest(w, "missing invite code", nil)
		return
	}

	result, err := h.memberService.JoinByInvite(r.Context(), userID, inviteCode)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, result)
}

// List returns the members of a workspace
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID", nil)
		return
	}

	members, err := h.memberService.ListMembers(r.Context(), userID, workspaceID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, members)
}

// ChangeRole updates a member's role in a workspace
func (h *MemberHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID", nil)
		return
	}

	targetUserID, err := uuid.Parse(chi.URLParam(r, "memberUserID"))
	if err != nil {
		response.BadRequest(w, "invalid member user ID", nil)
		return
	}

	var input domain.MemberRoleUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if !validateInput(w, input) {
		return
	}

	member, err := h.memberService.ChangeRole(r.Context(), userID, workspaceID, targetUserID, input.Role)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, member)
}

// Remove removes a member from a workspace
func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID", nil)
		return
	}

	targetUserID, err := uuid.Parse(chi.URLParam(r, "memberUserID"))
	if err != nil {
		response.BadRequest(w, "invalid member user ID", nil)
		return
	}

	if err := h.memberService.RemoveMember(r.Context(), userID, workspaceID, targetUserID); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}
