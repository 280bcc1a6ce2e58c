package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/service"
)

type MemberHandler struct {
	memberSvc       service.MemberService
	subscriptionSvc service.SubscriptionService
}

func NewMemberHandler(memberSvc service.MemberService, subscriptionSvc service.SubscriptionService) *MemberHandler {
	return &MemberHandler{
		memberSvc:       memberSvc,
		subscriptionSvc: subscriptionSvc,
	}
}

type registerMemberRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	Plan             string `json:"plan"`
	StartDate        string `json:"start_date"`
	ExpiryDate       string `json:"expiry_date"`
	Photo            string `json:"photo"`
}

func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.memberSvc.Register(r.Context(), staffFromContext(r.Context()), service.RegisterMemberRequest{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Plan:             domain.SubscriptionPlan(req.Plan),
		StartDate:        req.StartDate,
		ExpiryDate:       req.ExpiryDate,
		Photo:            req.Photo,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var member domain.Member
	if err := decodeJSON(r, &member); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	member.ID = mux.Vars(r)["id"]

	updated, err := h.memberSvc.Update(r.Context(), staffFromContext(r.Context()), &member)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.memberSvc.Delete(r.Context(), staffFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type renewRequest struct {
	Plan   string  `json:"plan"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

type renewResponse struct {
	Member  *domain.Member        `json:"member"`
	Payment *domain.PaymentRecord `json:"payment"`
}

func (h *MemberHandler) Renew(w http.ResponseWriter, r *http.Request) {
	var req renewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, payment, err := h.subscriptionSvc.Renew(r.Context(), staffFromContext(r.Context()), service.RenewRequest{
		MemberID: mux.Vars(r)["id"],
		Plan:     domain.SubscriptionPlan(req.Plan),
		Amount:   req.Amount,
		Method:   domain.PaymentMethod(req.Method),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renewResponse{Member: member, Payment: payment})
}

func (h *MemberHandler) ListExpiring(w http.ResponseWriter, r *http.Request) {
	members, err := h.subscriptionSvc.ListExpiring(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}
