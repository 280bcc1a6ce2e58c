package http

import (
	"net/http"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/service"
)

type AuthHandler struct {
	staffSvc service.StaffService
}

func NewAuthHandler(staffSvc service.StaffService) *AuthHandler {
	return &AuthHandler{staffSvc: staffSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string              `json:"token"`
	Staff *domain.StaffMember `json:"staff"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	staff, token, err := h.staffSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Staff: staff})
}

// Me returns the authenticated staff member's full profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	staff := staffFromContext(r.Context())
	if staff == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	full, err := h.staffSvc.Get(r.Context(), staff.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, full)
}
