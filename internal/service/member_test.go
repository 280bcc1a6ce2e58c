package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
)

func newMemberFixture(now time.Time) (*MockMemberRepo, *stubActivityRecorder, MemberService) {
	memberRepo := new(MockMemberRepo)
	activity := &stubActivityRecorder{}
	svc := NewMemberService(memberRepo, activity, membership.FixedClock(now))
	return memberRepo, activity, svc
}

func TestMemberRegister(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	t.Run("ComputesStartAndExpiry", func(t *testing.T) {
		memberRepo, activity, svc := newMemberFixture(now)
		memberRepo.On("GetByEmail", ctx, "kofi@example.com").Return(nil, domain.ErrNotFound)
		memberRepo.On("Create", ctx, mock.AnythingOfType("*domain.Member")).Return(nil)

		member, err := svc.Register(ctx, testStaff, RegisterMemberRequest{
			FullName: "Kofi Boateng",
			Email:    "kofi@example.com",
			Phone:    "+233201234567",
			Plan:     domain.PlanMonthly,
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-06-10", member.StartDate)
		assert.Equal(t, "2024-07-10", member.ExpiryDate)
		assert.Equal(t, domain.StatusActive, member.Status)
		assert.Len(t, activity.entries, 1)
	})

	t.Run("DayPassGetsSameDayCutoff", func(t *testing.T) {
		memberRepo, _, svc := newMemberFixture(now)
		memberRepo.On("Create", ctx, mock.AnythingOfType("*domain.Member")).Return(nil)

		member, err := svc.Register(ctx, testStaff, RegisterMemberRequest{
			FullName: "Akosua Asante",
			Phone:    "+233201111111",
			Plan:     domain.PlanDayEvening,
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-06-10T20:00:00", member.ExpiryDate)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		memberRepo, _, svc := newMemberFixture(now)
		memberRepo.On("GetByEmail", ctx, "kofi@example.com").Return(&domain.Member{ID: "m-1"}, nil)

		_, err := svc.Register(ctx, testStaff, RegisterMemberRequest{
			FullName: "Kofi Boateng",
			Email:    "kofi@example.com",
			Phone:    "+233201234567",
			Plan:     domain.PlanMonthly,
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingNameRejected", func(t *testing.T) {
		_, _, svc := newMemberFixture(now)

		_, err := svc.Register(ctx, testStaff, RegisterMemberRequest{Phone: "+233201234567"})

		assert.True(t, domain.IsValidation(err))
	})
}

func TestMemberStatusRecomputedOnRead(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	t.Run("StaleStoredStatusCorrected", func(t *testing.T) {
		memberRepo, _, svc := newMemberFixture(now)
		// Stored status says active but the expiry date has passed.
		memberRepo.On("GetByID", ctx, "m-1").Return(&domain.Member{
			ID: "m-1", Plan: domain.PlanMonthly,
			ExpiryDate: "2024-06-01", Status: domain.StatusActive,
		}, nil)

		member, err := svc.Get(ctx, "m-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusExpired, member.Status)
	})

	t.Run("ListRecomputesEveryRow", func(t *testing.T) {
		memberRepo, _, svc := newMemberFixture(now)
		memberRepo.On("List", ctx).Return([]domain.Member{
			{ID: "m-1", Plan: domain.PlanMonthly, ExpiryDate: "2024-06-12", Status: domain.StatusActive},
			{ID: "m-2", Plan: domain.PlanMonthly, ExpiryDate: "2024-09-01", Status: domain.StatusExpired},
			{ID: "m-3", Plan: domain.PlanMonthly, ExpiryDate: "", Status: domain.StatusExpired},
		}, nil)

		members, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusExpiring, members[0].Status)
		assert.Equal(t, domain.StatusActive, members[1].Status)
		// Missing expiry resolves active rather than locking the member out
		assert.Equal(t, domain.StatusActive, members[2].Status)
	})
}

func TestMemberDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

	t.Run("RecordsActivity", func(t *testing.T) {
		memberRepo, activity, svc := newMemberFixture(now)
		memberRepo.On("GetByID", ctx, "m-1").Return(&domain.Member{ID: "m-1", FullName: "Kofi Boateng"}, nil)
		memberRepo.On("Delete", ctx, "m-1").Return(nil)

		err := svc.Delete(ctx, testStaff, "m-1")

		assert.NoError(t, err)
		assert.Len(t, activity.entries, 1)
		assert.Contains(t, activity.entries[0].Details, "Kofi Boateng")
	})

	t.Run("UnknownMemberNotFound", func(t *testing.T) {
		memberRepo, _, svc := newMemberFixture(now)
		memberRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

		err := svc.Delete(ctx, testStaff, "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
