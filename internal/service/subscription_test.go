package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
)

func newSubscriptionFixture(now time.Time) (*MockMemberRepo, *MockPaymentRepo, *MockNotifier, *stubActivityRecorder, SubscriptionService) {
	memberRepo := new(MockMemberRepo)
	paymentRepo := new(MockPaymentRepo)
	notifier := new(MockNotifier)
	activity := &stubActivityRecorder{}
	svc := NewSubscriptionService(memberRepo, paymentRepo, notifier, activity, membership.FixedClock(now))
	return memberRepo, paymentRepo, notifier, activity, svc
}

func TestRenew(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	t.Run("ReactivatesExpiredMember", func(t *testing.T) {
		memberRepo, paymentRepo, notifier, _, svc := newSubscriptionFixture(now)
		member := &domain.Member{
			ID: "m-1", FullName: "Kofi Boateng", Email: "kofi@example.com",
			Plan: domain.PlanMonthly, StartDate: "2024-04-01",
			ExpiryDate: "2024-05-01", Status: domain.StatusExpired,
		}
		memberRepo.On("GetByID", ctx, "m-1").Return(member, nil)
		memberRepo.On("Update", ctx, member).Return(nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentRecord")).Return(nil)
		notifier.On("SendPaymentConfirmation", ctx, mock.AnythingOfType("service.PaymentConfirmationParams")).Return(nil)

		renewed, payment, err := svc.Renew(ctx, testStaff, RenewRequest{
			MemberID: "m-1",
			Amount:   200,
			Method:   domain.PaymentMethodCash,
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-06-10", renewed.StartDate)
		assert.Equal(t, "2024-07-10", renewed.ExpiryDate)
		assert.Equal(t, domain.StatusActive, renewed.Status)
		assert.Equal(t, domain.PaymentStatusConfirmed, payment.Status)
		assert.Equal(t, testStaff.FullName, payment.ConfirmedBy)
	})

	t.Run("PlanChangeTakesEffect", func(t *testing.T) {
		memberRepo, paymentRepo, notifier, _, svc := newSubscriptionFixture(now)
		member := &domain.Member{
			ID: "m-1", FullName: "Kofi Boateng",
			Plan: domain.PlanMonthly, ExpiryDate: "2024-06-01",
		}
		memberRepo.On("GetByID", ctx, "m-1").Return(member, nil)
		memberRepo.On("Update", ctx, member).Return(nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentRecord")).Return(nil)
		notifier.On("SendPaymentConfirmation", ctx, mock.Anything).Return(nil)

		renewed, _, err := svc.Renew(ctx, testStaff, RenewRequest{
			MemberID: "m-1",
			Plan:     domain.PlanOneWeek,
			Amount:   50,
			Method:   domain.PaymentMethodMomo,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.PlanOneWeek, renewed.Plan)
		assert.Equal(t, "2024-06-17", renewed.ExpiryDate)
	})

	t.Run("MomoRenewalPaymentStaysPending", func(t *testing.T) {
		memberRepo, paymentRepo, notifier, _, svc := newSubscriptionFixture(now)
		member := &domain.Member{ID: "m-1", FullName: "Kofi Boateng", Plan: domain.PlanMonthly}
		memberRepo.On("GetByID", ctx, "m-1").Return(member, nil)
		memberRepo.On("Update", ctx, member).Return(nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentRecord")).Return(nil)
		notifier.On("SendPaymentConfirmation", ctx, mock.Anything).Return(nil)

		_, payment, err := svc.Renew(ctx, testStaff, RenewRequest{
			MemberID: "m-1",
			Amount:   200,
			Method:   domain.PaymentMethodMomo,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	})

	t.Run("NonPositiveAmountRejected", func(t *testing.T) {
		_, _, _, _, svc := newSubscriptionFixture(now)

		_, _, err := svc.Renew(ctx, testStaff, RenewRequest{MemberID: "m-1", Amount: -5})

		assert.True(t, domain.IsValidation(err))
	})

	t.Run("NotificationFailureDoesNotFailRenewal", func(t *testing.T) {
		memberRepo, paymentRepo, notifier, _, svc := newSubscriptionFixture(now)
		member := &domain.Member{ID: "m-1", FullName: "Kofi Boateng", Email: "kofi@example.com", Plan: domain.PlanMonthly}
		memberRepo.On("GetByID", ctx, "m-1").Return(member, nil)
		memberRepo.On("Update", ctx, member).Return(nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentRecord")).Return(nil)
		notifier.On("SendPaymentConfirmation", ctx, mock.Anything).Return(errors.New("provider down"))

		_, _, err := svc.Renew(ctx, testStaff, RenewRequest{
			MemberID: "m-1", Amount: 200, Method: domain.PaymentMethodCash,
		})

		assert.NoError(t, err)
	})
}

func TestListExpiring(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	memberRepo, _, _, _, svc := newSubscriptionFixture(now)
	memberRepo.On("List", ctx).Return([]domain.Member{
		{ID: "m-1", Plan: domain.PlanMonthly, ExpiryDate: "2024-06-12"},
		{ID: "m-2", Plan: domain.PlanMonthly, ExpiryDate: "2024-09-01"},
		{ID: "m-3", Plan: domain.PlanMonthly, ExpiryDate: "2024-06-01"},
	}, nil)

	expiring, err := svc.ListExpiring(ctx)

	assert.NoError(t, err)
	assert.Len(t, expiring, 1)
	assert.Equal(t, "m-1", expiring[0].ID)
	assert.Equal(t, domain.StatusExpiring, expiring[0].Status)
}

func TestRefreshStatuses(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	t.Run("UpdatesOnlyChangedRows", func(t *testing.T) {
		memberRepo, _, _, _, svc := newSubscriptionFixture(now)
		memberRepo.On("List", ctx).Return([]domain.Member{
			{ID: "m-1", Plan: domain.PlanMonthly, ExpiryDate: "2024-06-01", Status: domain.StatusActive},
			{ID: "m-2", Plan: domain.PlanMonthly, ExpiryDate: "2024-09-01", Status: domain.StatusActive},
		}, nil)
		memberRepo.On("Update", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.ID == "m-1" && m.Status == domain.StatusExpired
		})).Return(nil)

		changed, err := svc.RefreshStatuses(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, changed)
		memberRepo.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("RowFailureSkippedNotFatal", func(t *testing.T) {
		memberRepo, _, _, _, svc := newSubscriptionFixture(now)
		memberRepo.On("List", ctx).Return([]domain.Member{
			{ID: "m-1", Plan: domain.PlanMonthly, ExpiryDate: "2024-06-01", Status: domain.StatusActive},
			{ID: "m-2", Plan: domain.PlanMonthly, ExpiryDate: "2024-05-01", Status: domain.StatusActive},
		}, nil)
		memberRepo.On("Update", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.ID == "m-1"
		})).Return(errors.New("connection refused"))
		memberRepo.On("Update", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.ID == "m-2"
		})).Return(nil)

		changed, err := svc.RefreshStatuses(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, changed)
	})
}
