package membership

import (
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

const (
	// Non-day-pass members count as expiring inside this window.
	expiringWindow = 7 * 24 * time.Hour
	// Day passes count as expiring inside this window.
	dayPassExpiringWindow = time.Hour
)

// ResolveStatus derives the lifecycle status of a membership from its
// persisted expiry value as of now. The stored status column is only a
// cache; every display or decision path goes through here.
//
// A missing expiry value resolves to active. That fail-open default mirrors
// the legacy data this system inherited and is kept deliberately visible.
func ResolveStatus(expiryValue string, plan domain.SubscriptionPlan, now time.Time) domain.MemberStatus {
	expiry, ok := ParseExpiry(expiryValue)
	if !ok {
		return domain.StatusActive
	}

	if expiry.Before(now) {
		return domain.StatusExpired
	}

	remaining := expiry.Sub(now)
	window := expiringWindow
	if plan.IsDayPass() {
		window = dayPassExpiringWindow
	}
	if remaining <= window {
		return domain.StatusExpiring
	}
	return domain.StatusActive
}
