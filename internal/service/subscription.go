package service

import (
	"context"
	"fmt"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/logger"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type subscriptionService struct {
	memberRepo  repository.MemberRepository
	paymentRepo repository.PaymentRepository
	notifier    NotificationGateway
	activity    ActivityRecorder
	clock       membership.Clock
}

func NewSubscriptionService(
	memberRepo repository.MemberRepository,
	paymentRepo repository.PaymentRepository,
	notifier NotificationGateway,
	activity ActivityRecorder,
	clock membership.Clock,
) SubscriptionService {
	return &subscriptionService{
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
		activity:    activity,
		clock:       clock,
	}
}

// Renew opens a fresh subscription window for the member starting today
// and records the renewal payment. Only runs on an explicit staff action;
// renewal windows shift with the calendar day, so it must never be driven
// by a timer.
func (s *subscriptionService) Renew(ctx context.Context, staff *domain.StaffMember, req RenewRequest) (*domain.Member, *domain.PaymentRecord, error) {
	if req.Amount <= 0 {
		return nil, nil, domain.NewValidationError("amount", "must be a positive number")
	}

	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, nil, err
	}

	if req.Plan != "" {
		member.Plan = req.Plan
	}
	window := membership.Renew(member.Plan, s.clock.Now())
	member.StartDate = window.StartDate
	member.ExpiryDate = window.ExpiryDate
	member.Status = window.Status

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, nil, fmt.Errorf("%w: updating member: %v", domain.ErrStoreUnavailable, err)
	}

	payment := &domain.PaymentRecord{
		MemberID:   member.ID,
		MemberName: member.FullName,
		Amount:     req.Amount,
		Date:       window.StartDate,
		Method:     req.Method,
		Status:     domain.PaymentStatusPending,
	}
	if req.Method == domain.PaymentMethodCash {
		payment.Status = domain.PaymentStatusConfirmed
		payment.ConfirmedBy = staff.FullName
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("%w: creating renewal payment: %v", domain.ErrStoreUnavailable, err)
	}

	s.activity.Record(ctx, staff, "Renew Membership",
		fmt.Sprintf("Renewed %s on the %s plan until %s", member.FullName, member.Plan, member.ExpiryDate),
		domain.ActivityCategoryFinancial)

	if member.Email != "" || member.Phone != "" {
		params := PaymentConfirmationParams{
			MemberName:  member.FullName,
			MemberEmail: member.Email,
			MemberPhone: member.Phone,
			Amount:      payment.Amount,
			Method:      payment.Method,
			Date:        payment.Date,
			ExpiryDate:  member.ExpiryDate,
		}
		if err := s.notifier.SendPaymentConfirmation(ctx, params); err != nil {
			logger.Warn("Renewal notification failed", "member", member.FullName, "error", err)
		}
	}

	return member, payment, nil
}

func (s *subscriptionService) ListExpiring(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	var expiring []domain.Member
	for i := range members {
		status := membership.ResolveStatus(members[i].ExpiryDate, members[i].Plan, now)
		if status == domain.StatusExpiring {
			members[i].Status = status
			expiring = append(expiring, members[i])
		}
	}
	return expiring, nil
}

// RefreshStatuses recomputes the stored status column for every member.
// The column is only a display cache; this keeps it from drifting too far
// between reads, it is never consulted for decisions.
func (s *subscriptionService) RefreshStatuses(ctx context.Context) (int, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	updated := 0
	for i := range members {
		derived := membership.ResolveStatus(members[i].ExpiryDate, members[i].Plan, now)
		if derived == members[i].Status {
			continue
		}
		members[i].Status = derived
		if err := s.memberRepo.Update(ctx, &members[i]); err != nil {
			logger.Error("Failed to refresh member status", "member_id", members[i].ID, "error", err)
			continue
		}
		updated++
	}
	return updated, nil
}
