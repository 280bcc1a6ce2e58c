package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/service"
)

type StaffHandler struct {
	staffSvc service.StaffService
}

func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

type createStaffRequest struct {
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Position   string   `json:"position"`
	Phone      string   `json:"phone"`
	Privileges []string `json:"privileges"`
	Password   string   `json:"password"`
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	privileges := make([]domain.Privilege, 0, len(req.Privileges))
	for _, p := range req.Privileges {
		privileges = append(privileges, domain.Privilege(p))
	}

	staff := &domain.StaffMember{
		FullName:   req.FullName,
		Email:      req.Email,
		Role:       domain.StaffRole(req.Role),
		Position:   req.Position,
		Phone:      req.Phone,
		Privileges: privileges,
	}

	created, err := h.staffSvc.Create(r.Context(), staffFromContext(r.Context()), staff, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var staff domain.StaffMember
	if err := decodeJSON(r, &staff); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	staff.ID = mux.Vars(r)["id"]

	updated, err := h.staffSvc.Update(r.Context(), staffFromContext(r.Context()), &staff)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.staffSvc.Delete(r.Context(), staffFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
