package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type recordPaymentRequest struct {
	MemberID      string                `json:"member_id"`
	MemberName    string                `json:"member_name"`
	Pending       *domain.PendingMember `json:"pending_member"`
	Amount        float64               `json:"amount"`
	Method        string                `json:"method"`
	TransactionID string                `json:"transaction_id"`
	MomoPhone     string                `json:"momo_phone"`
	Network       string                `json:"network"`
}

type recordPaymentResponse struct {
	Payment  *domain.PaymentRecord `json:"payment"`
	Warnings []string              `json:"warnings,omitempty"`
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, warnings, err := h.paymentSvc.RecordPayment(r.Context(), staffFromContext(r.Context()), service.RecordPaymentRequest{
		MemberID:      req.MemberID,
		MemberName:    req.MemberName,
		Pending:       req.Pending,
		Amount:        req.Amount,
		Method:        domain.PaymentMethod(req.Method),
		TransactionID: req.TransactionID,
		MomoPhone:     req.MomoPhone,
		Network:       req.Network,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordPaymentResponse{Payment: payment, Warnings: warnings})
}

func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	result, err := h.paymentSvc.ConfirmPayment(r.Context(), mux.Vars(r)["id"], staffFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PaymentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	payment, err := h.paymentSvc.RejectPayment(r.Context(), mux.Vars(r)["id"], staffFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentSvc.ListPayments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentSvc.ListPendingPayments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
