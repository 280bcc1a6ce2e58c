package repository

import (
	"context"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	// GetByEmail returns domain.ErrNotFound when no member holds the email.
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	List(ctx context.Context) ([]domain.Member, error)
	Delete(ctx context.Context, id string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.PaymentRecord) error
	GetByID(ctx context.Context, id string) (*domain.PaymentRecord, error)
	Update(ctx context.Context, payment *domain.PaymentRecord) error
	List(ctx context.Context) ([]domain.PaymentRecord, error)
	ListPending(ctx context.Context) ([]domain.PaymentRecord, error)
}

type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error)
	Update(ctx context.Context, staff *domain.StaffMember) error
	List(ctx context.Context) ([]domain.StaffMember, error)
	Delete(ctx context.Context, id string) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.GymEquipment) error
	GetByID(ctx context.Context, id string) (*domain.GymEquipment, error)
	Update(ctx context.Context, equipment *domain.GymEquipment) error
	List(ctx context.Context) ([]domain.GymEquipment, error)
	Delete(ctx context.Context, id string) error

	CreateMaintenanceLog(ctx context.Context, log *domain.MaintenanceLog) error
	ListMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	List(ctx context.Context) ([]domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type CheckInRepository interface {
	CreateClientCheckIn(ctx context.Context, checkIn *domain.ClientCheckIn) error
	CheckOutClient(ctx context.Context, id, checkOutTime string) error
	ListClientCheckIns(ctx context.Context, date string) ([]domain.ClientCheckIn, error)

	CreateAttendance(ctx context.Context, record *domain.AttendanceRecord) error
	SignOutAttendance(ctx context.Context, id, signOutTime string) error
	ListAttendance(ctx context.Context, date string) ([]domain.AttendanceRecord, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	List(ctx context.Context) ([]domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type ActivityLogRepository interface {
	Create(ctx context.Context, log *domain.ActivityLog) error
	List(ctx context.Context, limit int32) ([]domain.ActivityLog, error)
}
