package membership

import (
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

// RenewalWindow is the start/expiry/status tuple produced by renewing a
// membership. Persisting it and recording the matching payment is the
// caller's job.
type RenewalWindow struct {
	StartDate  string
	ExpiryDate string
	Status     domain.MemberStatus
}

// Renew computes a fresh subscription window for the plan starting today.
// A renewal always reactivates the member regardless of prior state. It is
// deterministic for a given day but not idempotent across days, so it must
// only run on an explicit renewal action.
func Renew(plan domain.SubscriptionPlan, now time.Time) RenewalWindow {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).Format(DateLayout)
	return RenewalWindow{
		StartDate:  start,
		ExpiryDate: ComputeExpiry(plan, start, FixedClock(now)),
		Status:     domain.StatusActive,
	}
}
