package service

import (
	"context"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type checkInService struct {
	checkInRepo repository.CheckInRepository
	clock       membership.Clock
}

func NewCheckInService(checkInRepo repository.CheckInRepository, clock membership.Clock) CheckInService {
	return &checkInService{
		checkInRepo: checkInRepo,
		clock:       clock,
	}
}

func (s *checkInService) CheckInClient(ctx context.Context, checkIn *domain.ClientCheckIn) (*domain.ClientCheckIn, error) {
	if checkIn.FullName == "" {
		return nil, domain.NewValidationError("full_name", "is required")
	}
	if checkIn.Phone == "" {
		return nil, domain.NewValidationError("phone", "is required")
	}

	now := s.clock.Now()
	checkIn.Date = now.Format(membership.DateLayout)
	checkIn.CheckInTime = now.Format(time.RFC3339)
	checkIn.CheckOutTime = ""

	if err := s.checkInRepo.CreateClientCheckIn(ctx, checkIn); err != nil {
		return nil, err
	}
	return checkIn, nil
}

func (s *checkInService) CheckOutClient(ctx context.Context, id string) error {
	return s.checkInRepo.CheckOutClient(ctx, id, s.clock.Now().Format(time.RFC3339))
}

func (s *checkInService) ListClientCheckIns(ctx context.Context, date string) ([]domain.ClientCheckIn, error) {
	if date == "" {
		date = s.clock.Now().Format(membership.DateLayout)
	}
	return s.checkInRepo.ListClientCheckIns(ctx, date)
}

func (s *checkInService) SignIn(ctx context.Context, staff *domain.StaffMember) (*domain.AttendanceRecord, error) {
	now := s.clock.Now()
	record := &domain.AttendanceRecord{
		StaffEmail: staff.Email,
		StaffRole:  staff.Role,
		Date:       now.Format(membership.DateLayout),
		SignInTime: now.Format(time.RFC3339),
	}
	if err := s.checkInRepo.CreateAttendance(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *checkInService) SignOut(ctx context.Context, recordID string) error {
	return s.checkInRepo.SignOutAttendance(ctx, recordID, s.clock.Now().Format(time.RFC3339))
}

func (s *checkInService) ListAttendance(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	if date == "" {
		date = s.clock.Now().Format(membership.DateLayout)
	}
	return s.checkInRepo.ListAttendance(ctx, date)
}
