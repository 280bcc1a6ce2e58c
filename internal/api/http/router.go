package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Members    *MemberHandler
	Payments   *PaymentHandler
	Staff      *StaffHandler
	Operations *OperationsHandler
}

// NewRouter builds the API route table. Everything under /api/v1 except
// login requires a valid staff token; mutating routes additionally check
// privileges.
func NewRouter(h *Handlers, auth *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.RequireAuth)

	protected.HandleFunc("/auth/me", h.Auth.Me).Methods("GET")

	// Members and subscriptions
	protected.HandleFunc("/members", requirePrivilege(domain.PrivilegeManageMembers, h.Members.Register)).Methods("POST")
	protected.HandleFunc("/members", h.Members.List).Methods("GET")
	protected.HandleFunc("/members/expiring", h.Members.ListExpiring).Methods("GET")
	protected.HandleFunc("/members/{id}", h.Members.Get).Methods("GET")
	protected.HandleFunc("/members/{id}", requirePrivilege(domain.PrivilegeManageMembers, h.Members.Update)).Methods("PUT")
	protected.HandleFunc("/members/{id}", requirePrivilege(domain.PrivilegeDeleteMembers, h.Members.Delete)).Methods("DELETE")
	protected.HandleFunc("/members/{id}/renew", requirePrivilege(domain.PrivilegeManagePayments, h.Members.Renew)).Methods("POST")
	protected.HandleFunc("/members/{id}/message", h.Operations.SendMessage).Methods("POST")

	// Payments
	protected.HandleFunc("/payments", requirePrivilege(domain.PrivilegeManagePayments, h.Payments.Record)).Methods("POST")
	protected.HandleFunc("/payments", h.Payments.List).Methods("GET")
	protected.HandleFunc("/payments/pending", h.Payments.ListPending).Methods("GET")
	protected.HandleFunc("/payments/{id}/confirm", requirePrivilege(domain.PrivilegeConfirmPayments, h.Payments.Confirm)).Methods("POST")
	protected.HandleFunc("/payments/{id}/reject", requirePrivilege(domain.PrivilegeConfirmPayments, h.Payments.Reject)).Methods("POST")

	// Staff accounts
	protected.HandleFunc("/staff", requirePrivilege(domain.PrivilegeManageStaff, h.Staff.Create)).Methods("POST")
	protected.HandleFunc("/staff", h.Staff.List).Methods("GET")
	protected.HandleFunc("/staff/{id}", h.Staff.Get).Methods("GET")
	protected.HandleFunc("/staff/{id}", h.Staff.Update).Methods("PUT")
	protected.HandleFunc("/staff/{id}", requirePrivilege(domain.PrivilegeManageStaff, h.Staff.Delete)).Methods("DELETE")

	// Equipment and maintenance
	protected.HandleFunc("/equipment", h.Operations.AddEquipment).Methods("POST")
	protected.HandleFunc("/equipment", h.Operations.ListEquipment).Methods("GET")
	protected.HandleFunc("/equipment/{id}", h.Operations.UpdateEquipment).Methods("PUT")
	protected.HandleFunc("/equipment/{id}", h.Operations.DeleteEquipment).Methods("DELETE")
	protected.HandleFunc("/maintenance", h.Operations.LogMaintenance).Methods("POST")
	protected.HandleFunc("/maintenance", h.Operations.ListMaintenanceLogs).Methods("GET")

	// Expenses
	protected.HandleFunc("/expenses", h.Operations.RecordExpense).Methods("POST")
	protected.HandleFunc("/expenses", h.Operations.ListExpenses).Methods("GET")
	protected.HandleFunc("/expenses/{id}", h.Operations.DeleteExpense).Methods("DELETE")

	// Walk-in clients and staff attendance
	protected.HandleFunc("/checkins", h.Operations.CheckInClient).Methods("POST")
	protected.HandleFunc("/checkins", h.Operations.ListClientCheckIns).Methods("GET")
	protected.HandleFunc("/checkins/{id}/checkout", h.Operations.CheckOutClient).Methods("POST")
	protected.HandleFunc("/attendance/signin", h.Operations.SignIn).Methods("POST")
	protected.HandleFunc("/attendance", h.Operations.ListAttendance).Methods("GET")
	protected.HandleFunc("/attendance/{id}/signout", h.Operations.SignOut).Methods("POST")

	// Announcements
	protected.HandleFunc("/announcements", requirePrivilege(domain.PrivilegeManageAnnouncements, h.Operations.PublishAnnouncement)).Methods("POST")
	protected.HandleFunc("/announcements", h.Operations.ListAnnouncements).Methods("GET")
	protected.HandleFunc("/announcements/{id}", requirePrivilege(domain.PrivilegeManageAnnouncements, h.Operations.DeleteAnnouncement)).Methods("DELETE")

	// Activity log
	protected.HandleFunc("/activity", requirePrivilege(domain.PrivilegeViewActivityLogs, h.Operations.ListActivity)).Methods("GET")

	return router
}
