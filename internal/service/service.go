package service

import (
	"context"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

// RecordPaymentRequest carries everything needed to record a payment.
// Either MemberID (existing member) or Pending (registration snapshot not
// yet in the member store) is set, never both.
type RecordPaymentRequest struct {
	MemberID   string
	MemberName string
	Pending    *domain.PendingMember
	Amount     float64
	Method     domain.PaymentMethod

	// Mobile money metadata, all optional
	TransactionID string
	MomoPhone     string
	Network       string
}

// ConfirmResult is the outcome of a successful confirmation. Member is nil
// unless the payment carried a pending-member snapshot.
type ConfirmResult struct {
	Payment       *domain.PaymentRecord
	Member        *domain.Member
	MemberCreated bool
}

type PaymentService interface {
	// RecordPayment returns the created record plus non-blocking warnings
	// (e.g. mobile money recorded without a transaction id).
	RecordPayment(ctx context.Context, staff *domain.StaffMember, req RecordPaymentRequest) (*domain.PaymentRecord, []string, error)
	ConfirmPayment(ctx context.Context, paymentID string, staff *domain.StaffMember) (*ConfirmResult, error)
	RejectPayment(ctx context.Context, paymentID string, staff *domain.StaffMember) (*domain.PaymentRecord, error)
	ListPayments(ctx context.Context) ([]domain.PaymentRecord, error)
	ListPendingPayments(ctx context.Context) ([]domain.PaymentRecord, error)
}

type RegisterMemberRequest struct {
	FullName         string
	Email            string
	Phone            string
	Address          string
	EmergencyContact string
	Plan             domain.SubscriptionPlan
	StartDate        string
	ExpiryDate       string // optional manual override; computed when empty
	Photo            string
}

type MemberService interface {
	Register(ctx context.Context, staff *domain.StaffMember, req RegisterMemberRequest) (*domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, staff *domain.StaffMember, member *domain.Member) (*domain.Member, error)
	Delete(ctx context.Context, staff *domain.StaffMember, id string) error
}

type RenewRequest struct {
	MemberID string
	Plan     domain.SubscriptionPlan // empty keeps the member's current plan
	Amount   float64
	Method   domain.PaymentMethod
}

type SubscriptionService interface {
	Renew(ctx context.Context, staff *domain.StaffMember, req RenewRequest) (*domain.Member, *domain.PaymentRecord, error)
	ListExpiring(ctx context.Context) ([]domain.Member, error)
	// RefreshStatuses recomputes the advisory status column for every
	// member and returns how many rows changed.
	RefreshStatuses(ctx context.Context) (int, error)
}

type StaffService interface {
	Login(ctx context.Context, email, password string) (*domain.StaffMember, string, error)
	Create(ctx context.Context, actor *domain.StaffMember, staff *domain.StaffMember, password string) (*domain.StaffMember, error)
	Get(ctx context.Context, id string) (*domain.StaffMember, error)
	List(ctx context.Context) ([]domain.StaffMember, error)
	Update(ctx context.Context, actor *domain.StaffMember, staff *domain.StaffMember) (*domain.StaffMember, error)
	Delete(ctx context.Context, actor *domain.StaffMember, id string) error
}

type EquipmentService interface {
	Add(ctx context.Context, equipment *domain.GymEquipment) (*domain.GymEquipment, error)
	Update(ctx context.Context, equipment *domain.GymEquipment) (*domain.GymEquipment, error)
	List(ctx context.Context) ([]domain.GymEquipment, error)
	Delete(ctx context.Context, id string) error

	LogMaintenance(ctx context.Context, staff *domain.StaffMember, log *domain.MaintenanceLog) (*domain.MaintenanceLog, error)
	ListMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error)
}

type ExpenseService interface {
	Record(ctx context.Context, staff *domain.StaffMember, expense *domain.Expense) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	Delete(ctx context.Context, staff *domain.StaffMember, id string) error
}

type CheckInService interface {
	CheckInClient(ctx context.Context, checkIn *domain.ClientCheckIn) (*domain.ClientCheckIn, error)
	CheckOutClient(ctx context.Context, id string) error
	ListClientCheckIns(ctx context.Context, date string) ([]domain.ClientCheckIn, error)

	SignIn(ctx context.Context, staff *domain.StaffMember) (*domain.AttendanceRecord, error)
	SignOut(ctx context.Context, recordID string) error
	ListAttendance(ctx context.Context, date string) ([]domain.AttendanceRecord, error)
}

type AnnouncementService interface {
	Publish(ctx context.Context, staff *domain.StaffMember, announcement *domain.Announcement) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Delete(ctx context.Context, staff *domain.StaffMember, id string) error
}

type CommunicationService interface {
	// SendToMember delivers a custom message over email and SMS,
	// best-effort on each channel.
	SendToMember(ctx context.Context, staff *domain.StaffMember, memberID, subject, message string) error
}

// PaymentConfirmationParams describes a confirmed payment for the member
// notification.
type PaymentConfirmationParams struct {
	MemberName    string
	MemberEmail   string
	MemberPhone   string
	Amount        float64
	Method        domain.PaymentMethod
	Date          string
	TransactionID string
	ExpiryDate    string
}

// WelcomeParams describe a freshly created member for the welcome
// notification.
type WelcomeParams struct {
	MemberName  string
	MemberEmail string
	MemberPhone string
	Plan        domain.SubscriptionPlan
	StartDate   string
	ExpiryDate  string
}

// NotificationGateway fans a notification out to the member's contact
// channels. Delivery is best-effort: callers log returned errors and never
// let them fail the triggering operation.
type NotificationGateway interface {
	SendWelcome(ctx context.Context, params WelcomeParams) error
	SendPaymentConfirmation(ctx context.Context, params PaymentConfirmationParams) error
	SendExpiryReminder(ctx context.Context, member *domain.Member) error
	SendMessage(ctx context.Context, member *domain.Member, subject, message string) error
}

// EmailSender delivers a single email.
type EmailSender interface {
	Send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error
}

// SMSSender delivers a single text message.
type SMSSender interface {
	Send(ctx context.Context, toPhone, message string) error
}

// ActivityRecorder appends to the audit trail. Fire-and-forget: failures
// are logged, never returned.
type ActivityRecorder interface {
	Record(ctx context.Context, actor *domain.StaffMember, action, details string, category domain.ActivityCategory)
}
