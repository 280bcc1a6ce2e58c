package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
	"github.com/CaL7598/Goodlife-gym/internal/service"
)

// OperationsHandler covers the day-to-day facility endpoints: equipment,
// maintenance, expenses, check-ins, attendance, announcements, the
// communication center and the activity log.
type OperationsHandler struct {
	equipmentSvc     service.EquipmentService
	expenseSvc       service.ExpenseService
	checkInSvc       service.CheckInService
	announcementSvc  service.AnnouncementService
	communicationSvc service.CommunicationService
	activityRepo     repository.ActivityLogRepository
}

func NewOperationsHandler(
	equipmentSvc service.EquipmentService,
	expenseSvc service.ExpenseService,
	checkInSvc service.CheckInService,
	announcementSvc service.AnnouncementService,
	communicationSvc service.CommunicationService,
	activityRepo repository.ActivityLogRepository,
) *OperationsHandler {
	return &OperationsHandler{
		equipmentSvc:     equipmentSvc,
		expenseSvc:       expenseSvc,
		checkInSvc:       checkInSvc,
		announcementSvc:  announcementSvc,
		communicationSvc: communicationSvc,
		activityRepo:     activityRepo,
	}
}

// Equipment

func (h *OperationsHandler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	var equipment domain.GymEquipment
	if err := decodeJSON(r, &equipment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.equipmentSvc.Add(r.Context(), &equipment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OperationsHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	var equipment domain.GymEquipment
	if err := decodeJSON(r, &equipment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	equipment.ID = mux.Vars(r)["id"]
	updated, err := h.equipmentSvc.Update(r.Context(), &equipment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *OperationsHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.equipmentSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *OperationsHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.equipmentSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OperationsHandler) LogMaintenance(w http.ResponseWriter, r *http.Request) {
	var log domain.MaintenanceLog
	if err := decodeJSON(r, &log); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.equipmentSvc.LogMaintenance(r.Context(), staffFromContext(r.Context()), &log)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OperationsHandler) ListMaintenanceLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.equipmentSvc.ListMaintenanceLogs(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// Expenses

func (h *OperationsHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var expense domain.Expense
	if err := decodeJSON(r, &expense); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.expenseSvc.Record(r.Context(), staffFromContext(r.Context()), &expense)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OperationsHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *OperationsHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.expenseSvc.Delete(r.Context(), staffFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Client check-ins

func (h *OperationsHandler) CheckInClient(w http.ResponseWriter, r *http.Request) {
	var checkIn domain.ClientCheckIn
	if err := decodeJSON(r, &checkIn); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.checkInSvc.CheckInClient(r.Context(), &checkIn)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OperationsHandler) CheckOutClient(w http.ResponseWriter, r *http.Request) {
	if err := h.checkInSvc.CheckOutClient(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OperationsHandler) ListClientCheckIns(w http.ResponseWriter, r *http.Request) {
	checkIns, err := h.checkInSvc.ListClientCheckIns(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkIns)
}

// Staff attendance

func (h *OperationsHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	record, err := h.checkInSvc.SignIn(r.Context(), staffFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *OperationsHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.checkInSvc.SignOut(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OperationsHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.checkInSvc.ListAttendance(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Announcements

func (h *OperationsHandler) PublishAnnouncement(w http.ResponseWriter, r *http.Request) {
	var announcement domain.Announcement
	if err := decodeJSON(r, &announcement); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.announcementSvc.Publish(r.Context(), staffFromContext(r.Context()), &announcement)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OperationsHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}

func (h *OperationsHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.announcementSvc.Delete(r.Context(), staffFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Communication center

type sendMessageRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *OperationsHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := h.communicationSvc.SendToMember(r.Context(), staffFromContext(r.Context()), mux.Vars(r)["id"], req.Subject, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

// Activity log

func (h *OperationsHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit := int32(100)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = int32(parsed)
	}

	entries, err := h.activityRepo.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
