package jobs

import (
	"context"

	"github.com/CaL7598/Goodlife-gym/internal/logger"
)

// RefreshMemberStatuses recomputes the advisory status column for every
// member from their expiry date and plan.
func (jr *JobRunner) RefreshMemberStatuses() {
	jr.runWithRecovery("RefreshMemberStatuses", func() {
		ctx := context.Background()

		changed, err := jr.services.Subscription.RefreshStatuses(ctx)
		if err != nil {
			logger.Error("Failed to refresh member statuses", "error", err)
			return
		}

		logger.Info("Refreshed member statuses", "changed", changed)
	})
}

// SendExpiryReminders notifies every member whose subscription is inside
// the expiring window.
func (jr *JobRunner) SendExpiryReminders() {
	jr.runWithRecovery("SendExpiryReminders", func() {
		ctx := context.Background()

		expiring, err := jr.services.Subscription.ListExpiring(ctx)
		if err != nil {
			logger.Error("Failed to list expiring members", "error", err)
			return
		}

		sent := 0
		for i := range expiring {
			member := &expiring[i]
			if err := jr.services.Notifier.SendExpiryReminder(ctx, member); err != nil {
				logger.Error("Failed to send expiry reminder",
					"member_id", member.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent expiry reminders", "expiring", len(expiring), "sent", sent)
	})
}
