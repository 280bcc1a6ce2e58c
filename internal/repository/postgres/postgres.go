package postgres

import (
	"database/sql"
	"errors"

	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.PaymentRepository
	repository.StaffRepository
	repository.EquipmentRepository
	repository.ExpenseRepository
	repository.CheckInRepository
	repository.AnnouncementRepository
	repository.ActivityLogRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		MemberRepository:       NewMemberRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		StaffRepository:        NewStaffRepository(db),
		EquipmentRepository:    NewEquipmentRepository(db),
		ExpenseRepository:      NewExpenseRepository(db),
		CheckInRepository:      NewCheckInRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		ActivityLogRepository:  NewActivityLogRepository(db),
	}
}

// IsUniqueViolation reports whether err is the store's uniqueness
// constraint error. The email constraint on members is the arbiter for
// concurrent pending-member confirmations.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
