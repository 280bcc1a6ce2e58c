package membership

import (
	"testing"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatus_WeeklyWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		expiry   string
		expected domain.MemberStatus
	}{
		{"Seven days plus a second out is active", "2024-03-17T12:00:01", domain.StatusActive},
		{"Exactly seven days out is expiring", "2024-03-17T12:00:00", domain.StatusExpiring},
		{"One second in the past is expired", "2024-03-10T11:59:59", domain.StatusExpired},
		{"Far future is active", "2024-06-01", domain.StatusActive},
		{"Expiry day itself is expiring", "2024-03-12", domain.StatusExpiring},
		{"Yesterday is expired", "2024-03-09", domain.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveStatus(tt.expiry, domain.PlanMonthly, now))
		})
	}
}

func TestResolveStatus_DayPassWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)

	t.Run("61 minutes out is active", func(t *testing.T) {
		assert.Equal(t, domain.StatusActive,
			ResolveStatus("2024-03-10T10:01:00", domain.PlanDayMorning, now))
	})

	t.Run("Exactly 60 minutes out is expiring", func(t *testing.T) {
		assert.Equal(t, domain.StatusExpiring,
			ResolveStatus("2024-03-10T10:00:00", domain.PlanDayMorning, now))
	})

	t.Run("Past cutoff is expired", func(t *testing.T) {
		assert.Equal(t, domain.StatusExpired,
			ResolveStatus("2024-03-10T08:00:00", domain.PlanDayEvening, now))
	})
}

func TestResolveStatus_MemberValidThroughExpiryDay(t *testing.T) {
	// A bare calendar date keeps the member in the gym until the end of
	// that day, not its midnight.
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.Local)
	assert.Equal(t, domain.StatusExpiring, ResolveStatus("2024-03-10", domain.PlanMonthly, now))
}

func TestResolveStatus_MissingExpiryFailsOpen(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	// Records with no expiry are never reported expired. Inherited
	// behavior, kept until product says otherwise.
	assert.Equal(t, domain.StatusActive, ResolveStatus("", domain.PlanMonthly, now))
	assert.Equal(t, domain.StatusActive, ResolveStatus("", domain.PlanDayMorning, now))
}
