package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/logger"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	memberRepo  repository.MemberRepository
	notifier    NotificationGateway
	activity    ActivityRecorder
	clock       membership.Clock
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	memberRepo repository.MemberRepository,
	notifier NotificationGateway,
	activity ActivityRecorder,
	clock membership.Clock,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		notifier:    notifier,
		activity:    activity,
		clock:       clock,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, staff *domain.StaffMember, req RecordPaymentRequest) (*domain.PaymentRecord, []string, error) {
	if req.Amount <= 0 {
		return nil, nil, domain.NewValidationError("amount", "must be a positive number")
	}
	if req.MemberID == "" && req.Pending == nil {
		return nil, nil, domain.NewValidationError("member", "payment needs a member or a registration snapshot")
	}

	payment := &domain.PaymentRecord{
		MemberID:      req.MemberID,
		MemberName:    req.MemberName,
		Amount:        req.Amount,
		Date:          s.clock.Now().Format(membership.DateLayout),
		Method:        req.Method,
		TransactionID: req.TransactionID,
		MomoPhone:     req.MomoPhone,
		Network:       req.Network,
	}
	if req.Pending != nil {
		payment.IsPendingMember = true
		payment.Pending = req.Pending
		if payment.MemberName == "" {
			payment.MemberName = req.Pending.FullName
		}
	}

	var warnings []string
	switch req.Method {
	case domain.PaymentMethodCash:
		// Cash changes hands in front of the recording staff, so it is
		// confirmed on the spot.
		payment.Status = domain.PaymentStatusConfirmed
		payment.ConfirmedBy = staff.FullName
	case domain.PaymentMethodMomo:
		payment.Status = domain.PaymentStatusPending
		if req.TransactionID == "" {
			warnings = append(warnings, "no transaction id provided; verify against the provider statement")
		}
		if req.MomoPhone == "" {
			warnings = append(warnings, "no mobile money phone number provided")
		}
	default:
		return nil, nil, domain.NewValidationError("method", fmt.Sprintf("unsupported payment method %q", req.Method))
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("%w: creating payment: %v", domain.ErrStoreUnavailable, err)
	}

	s.activity.Record(ctx, staff, "Record Payment",
		fmt.Sprintf("Recorded %s payment of %.2f for %s (%s)", payment.Method, payment.Amount, payment.MemberName, payment.Status),
		domain.ActivityCategoryFinancial)

	return payment, warnings, nil
}

// ConfirmPayment finalizes a pending payment. For pending-member payments
// it materializes (or links) the member record first; the payment is never
// marked confirmed unless that member exists. Notification fires only after
// the payment update is durable, and its failure never fails the
// confirmation.
func (s *paymentService) ConfirmPayment(ctx context.Context, paymentID string, staff *domain.StaffMember) (*ConfirmResult, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Finalized() {
		return nil, domain.ErrAlreadyFinalized
	}

	result := &ConfirmResult{Payment: payment}

	if payment.IsPendingMember && payment.Pending != nil {
		member, created, err := s.materializeMember(ctx, payment.Pending)
		if err != nil {
			// Abort whole: the payment stays Pending and the caller may
			// retry the entire confirmation.
			return nil, err
		}
		payment.MemberID = member.ID
		result.Member = member
		result.MemberCreated = created
	}

	payment.Status = domain.PaymentStatusConfirmed
	payment.ConfirmedBy = staff.FullName
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w: updating payment: %v", domain.ErrStoreUnavailable, err)
	}

	s.notifyConfirmed(ctx, payment, result)
	s.recordConfirmActivity(ctx, staff, payment, result)

	return result, nil
}

// materializeMember resolves the pending snapshot to a member record:
// reuse-and-merge when the email is already registered, create otherwise.
// A uniqueness violation on create means a concurrent confirmation won the
// race; the merge path is retried once against the winner's record.
func (s *paymentService) materializeMember(ctx context.Context, snap *domain.PendingMember) (*domain.Member, bool, error) {
	existing, err := s.memberRepo.GetByEmail(ctx, snap.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("%w: looking up member: %v", domain.ErrStoreUnavailable, err)
	}
	if existing != nil {
		member, err := s.mergeSnapshot(ctx, existing, snap)
		return member, false, err
	}

	member := s.memberFromSnapshot(snap)
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost the race; the store's uniqueness constraint is the
			// arbiter. Fetch the winner and merge into it instead.
			winner, fetchErr := s.memberRepo.GetByEmail(ctx, snap.Email)
			if fetchErr != nil {
				return nil, false, fmt.Errorf("%w: refetching member after duplicate: %v", domain.ErrStoreUnavailable, fetchErr)
			}
			merged, mergeErr := s.mergeSnapshot(ctx, winner, snap)
			return merged, false, mergeErr
		}
		return nil, false, fmt.Errorf("%w: creating member: %v", domain.ErrStoreUnavailable, err)
	}
	return member, true, nil
}

func (s *paymentService) memberFromSnapshot(snap *domain.PendingMember) *domain.Member {
	startDate := snap.StartDate
	if startDate == "" {
		startDate = s.clock.Now().Format(membership.DateLayout)
	}
	expiryDate := snap.ExpiryDate
	if expiryDate == "" {
		expiryDate = membership.ComputeExpiry(snap.Plan, startDate, s.clock)
	}
	return &domain.Member{
		FullName:   snap.FullName,
		Email:      snap.Email,
		Phone:      snap.Phone,
		Address:    snap.Address,
		Photo:      snap.Photo,
		Plan:       snap.Plan,
		StartDate:  startDate,
		ExpiryDate: expiryDate,
		Status:     domain.StatusActive,
	}
}

// mergeSnapshot folds newer snapshot fields into an existing member:
// plan when changed, expiry only when strictly later, photo only when the
// member has none. Status is left alone; it is recomputed on every read.
func (s *paymentService) mergeSnapshot(ctx context.Context, member *domain.Member, snap *domain.PendingMember) (*domain.Member, error) {
	changed := false
	if snap.Plan != "" && snap.Plan != member.Plan {
		member.Plan = snap.Plan
		changed = true
	}
	if snap.ExpiryDate != "" && membership.ExpiryAfter(snap.ExpiryDate, member.ExpiryDate) {
		member.ExpiryDate = snap.ExpiryDate
		changed = true
	}
	if snap.Photo != "" && member.Photo == "" {
		member.Photo = snap.Photo
		changed = true
	}
	if !changed {
		return member, nil
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("%w: merging member fields: %v", domain.ErrStoreUnavailable, err)
	}
	return member, nil
}

func (s *paymentService) notifyConfirmed(ctx context.Context, payment *domain.PaymentRecord, result *ConfirmResult) {
	var email, phone, expiry string
	if result.Member != nil {
		email = result.Member.Email
		phone = result.Member.Phone
		expiry = result.Member.ExpiryDate
	} else if payment.MemberID != "" {
		member, err := s.memberRepo.GetByID(ctx, payment.MemberID)
		if err != nil {
			logger.Warn("Skipping confirmation notification, member lookup failed", "member_id", payment.MemberID, "error", err)
			return
		}
		email = member.Email
		phone = member.Phone
		expiry = member.ExpiryDate
	}

	if result.MemberCreated {
		welcome := WelcomeParams{
			MemberName:  result.Member.FullName,
			MemberEmail: result.Member.Email,
			MemberPhone: result.Member.Phone,
			Plan:        result.Member.Plan,
			StartDate:   result.Member.StartDate,
			ExpiryDate:  result.Member.ExpiryDate,
		}
		if err := s.notifier.SendWelcome(ctx, welcome); err != nil {
			logger.Warn("Welcome notification failed", "member", result.Member.FullName, "error", err)
		}
	}

	params := PaymentConfirmationParams{
		MemberName:    payment.MemberName,
		MemberEmail:   email,
		MemberPhone:   phone,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Date:          payment.Date,
		TransactionID: payment.TransactionID,
		ExpiryDate:    expiry,
	}
	if err := s.notifier.SendPaymentConfirmation(ctx, params); err != nil {
		logger.Warn("Payment confirmation notification failed", "payment_id", payment.ID, "error", err)
	}
}

func (s *paymentService) recordConfirmActivity(ctx context.Context, staff *domain.StaffMember, payment *domain.PaymentRecord, result *ConfirmResult) {
	var details string
	switch {
	case result.MemberCreated:
		details = fmt.Sprintf("Verified %s payment of %.2f and created member %s", payment.Method, payment.Amount, payment.MemberName)
	case payment.IsPendingMember:
		details = fmt.Sprintf("Verified %s payment of %.2f and linked existing member %s", payment.Method, payment.Amount, payment.MemberName)
	default:
		details = fmt.Sprintf("Verified %s payment of %.2f for %s", payment.Method, payment.Amount, payment.MemberName)
	}
	s.activity.Record(ctx, staff, "Confirm Payment", details, domain.ActivityCategoryFinancial)
}

func (s *paymentService) RejectPayment(ctx context.Context, paymentID string, staff *domain.StaffMember) (*domain.PaymentRecord, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Finalized() {
		return nil, domain.ErrAlreadyFinalized
	}

	payment.Status = domain.PaymentStatusRejected
	payment.ConfirmedBy = staff.FullName
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w: updating payment: %v", domain.ErrStoreUnavailable, err)
	}

	s.activity.Record(ctx, staff, "Reject Payment",
		fmt.Sprintf("Rejected %s payment of %.2f for %s", payment.Method, payment.Amount, payment.MemberName),
		domain.ActivityCategoryFinancial)

	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentService) ListPendingPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.ListPending(ctx)
}
