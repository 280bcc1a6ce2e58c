package membership

import (
	"strings"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

const (
	// DateLayout is the persisted form of calendar dates.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the persisted form of day-pass expiry instants:
	// local date-time to the second, no UTC offset marker.
	DateTimeLayout = "2006-01-02T15:04:05"

	dayMorningHour = 11
	dayEveningHour = 20
)

// NormalizeDate reduces a date or date-time string to its calendar-date
// part in local time. The time portion is discarded before any arithmetic
// so a UTC-midnight timestamp cannot shift the calendar day in a negative
// offset locale. A value that cannot be parsed returns the zero time.
func NormalizeDate(value string) time.Time {
	datePart, _, _ := strings.Cut(value, "T")
	t, err := time.ParseInLocation(DateLayout, datePart, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ComputeExpiry calculates the expiry value for a plan starting on
// startDate (YYYY-MM-DD; a time suffix is discarded). An empty startDate
// starts the plan today per clock.
//
// Day passes return a date-time string with the plan's cutoff hour; every
// other plan returns a bare calendar date. Callers detect the mode by the
// presence of the "T" separator, so the asymmetry is load-bearing.
func ComputeExpiry(plan domain.SubscriptionPlan, startDate string, clock Clock) string {
	var start time.Time
	if startDate == "" {
		now := clock.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else {
		start = NormalizeDate(startDate)
		if start.IsZero() {
			now := clock.Now()
			start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		}
	}

	switch plan {
	case domain.PlanMonthly, domain.PlanBasic, domain.PlanPremium:
		return start.AddDate(0, 1, 0).Format(DateLayout)
	case domain.PlanTwoWeeks:
		return start.AddDate(0, 0, 14).Format(DateLayout)
	case domain.PlanOneWeek:
		return start.AddDate(0, 0, 7).Format(DateLayout)
	case domain.PlanVIP:
		return start.AddDate(0, 6, 0).Format(DateLayout)
	case domain.PlanDayMorning:
		return time.Date(start.Year(), start.Month(), start.Day(), dayMorningHour, 0, 0, 0, time.Local).Format(DateTimeLayout)
	case domain.PlanDayEvening:
		return time.Date(start.Year(), start.Month(), start.Day(), dayEveningHour, 0, 0, 0, time.Local).Format(DateTimeLayout)
	default:
		// Unknown plans fall back to the Monthly rule rather than failing;
		// imported data carries plan values outside the current set.
		return start.AddDate(0, 1, 0).Format(DateLayout)
	}
}

// ParseExpiry turns a persisted expiry value into the instant at which the
// membership lapses. Bare calendar dates are valid through the entirety of
// the expiry day; date-time values are taken as-is. The zero time and false
// are returned for an empty or unparseable value.
func ParseExpiry(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if strings.Contains(value, "T") {
		t, err := time.ParseInLocation(DateTimeLayout, value, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.Local), true
}

// ExpiryAfter reports whether candidate is a strictly later expiry
// instant than current. Unparseable candidates never win; an unparseable
// current always loses to a parseable candidate.
func ExpiryAfter(candidate, current string) bool {
	c, okC := ParseExpiry(candidate)
	if !okC {
		return false
	}
	e, okE := ParseExpiry(current)
	if !okE {
		return true
	}
	return c.After(e)
}
