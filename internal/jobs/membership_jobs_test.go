package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CaL7598/Goodlife-gym/internal/config"
	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/service"
)

type fakeSubscriptionService struct {
	service.SubscriptionService
	expiring    []domain.Member
	listErr     error
	refreshed   int
	refreshErr  error
	refreshRuns int
}

func (f *fakeSubscriptionService) ListExpiring(ctx context.Context) ([]domain.Member, error) {
	return f.expiring, f.listErr
}

func (f *fakeSubscriptionService) RefreshStatuses(ctx context.Context) (int, error) {
	f.refreshRuns++
	return f.refreshed, f.refreshErr
}

type fakeNotifier struct {
	service.NotificationGateway
	reminded []string
	fail     map[string]error
}

func (f *fakeNotifier) SendExpiryReminder(ctx context.Context, member *domain.Member) error {
	if err := f.fail[member.ID]; err != nil {
		return err
	}
	f.reminded = append(f.reminded, member.ID)
	return nil
}

func newRunner(sub *fakeSubscriptionService, notifier *fakeNotifier) *JobRunner {
	return NewJobRunner(&Services{Subscription: sub, Notifier: notifier}, &config.Config{})
}

func TestSendExpiryReminders(t *testing.T) {
	t.Run("RemindsEveryExpiringMember", func(t *testing.T) {
		sub := &fakeSubscriptionService{expiring: []domain.Member{{ID: "m-1"}, {ID: "m-2"}}}
		notifier := &fakeNotifier{}

		newRunner(sub, notifier).SendExpiryReminders()

		assert.Equal(t, []string{"m-1", "m-2"}, notifier.reminded)
	})

	t.Run("OneFailureDoesNotStopTheRest", func(t *testing.T) {
		sub := &fakeSubscriptionService{expiring: []domain.Member{{ID: "m-1"}, {ID: "m-2"}, {ID: "m-3"}}}
		notifier := &fakeNotifier{fail: map[string]error{"m-2": errors.New("provider down")}}

		newRunner(sub, notifier).SendExpiryReminders()

		assert.Equal(t, []string{"m-1", "m-3"}, notifier.reminded)
	})

	t.Run("ListFailureSendsNothing", func(t *testing.T) {
		sub := &fakeSubscriptionService{listErr: errors.New("connection refused")}
		notifier := &fakeNotifier{}

		newRunner(sub, notifier).SendExpiryReminders()

		assert.Empty(t, notifier.reminded)
	})
}

func TestRefreshMemberStatuses(t *testing.T) {
	sub := &fakeSubscriptionService{refreshed: 3}

	newRunner(sub, &fakeNotifier{}).RefreshMemberStatuses()

	assert.Equal(t, 1, sub.refreshRuns)
}

func TestRunWithRecoverySwallowsPanics(t *testing.T) {
	runner := newRunner(&fakeSubscriptionService{}, &fakeNotifier{})

	assert.NotPanics(t, func() {
		runner.runWithRecovery("panicky", func() { panic("boom") })
	})
}
