package domain

// SubscriptionPlan is the closed set of plans a member can hold. Legacy
// plans (Basic, Premium, VIP) survive from imported data and map onto the
// current expiry rules.
type SubscriptionPlan string

const (
	PlanMonthly    SubscriptionPlan = "Monthly"
	PlanTwoWeeks   SubscriptionPlan = "2 Weeks"
	PlanOneWeek    SubscriptionPlan = "1 Week"
	PlanDayMorning SubscriptionPlan = "Day Morning"
	PlanDayEvening SubscriptionPlan = "Day Evening"
	// Legacy plans kept for backward compatibility
	PlanBasic   SubscriptionPlan = "Basic"
	PlanPremium SubscriptionPlan = "Premium"
	PlanVIP     SubscriptionPlan = "VIP"
)

// IsDayPass reports whether the plan expires at a fixed hour on the
// purchase day rather than at the end of a multi-day window.
func (p SubscriptionPlan) IsDayPass() bool {
	return p == PlanDayMorning || p == PlanDayEvening
}

type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusExpiring MemberStatus = "expiring"
	StatusExpired  MemberStatus = "expired"
)

// Member is a gym member. ExpiryDate is authoritative (it may have been
// entered manually for imported records); Status is an advisory cache that
// every read path recomputes from ExpiryDate.
type Member struct {
	ID               string           `json:"id"`
	FullName         string           `json:"full_name"`
	Email            string           `json:"email,omitempty"`
	Phone            string           `json:"phone"`
	Address          string           `json:"address,omitempty"`
	EmergencyContact string           `json:"emergency_contact,omitempty"`
	Plan             SubscriptionPlan `json:"plan"`
	StartDate        string           `json:"start_date"`  // YYYY-MM-DD
	ExpiryDate       string           `json:"expiry_date"` // YYYY-MM-DD, or YYYY-MM-DDTHH:mm:ss for day passes
	Status           MemberStatus     `json:"status"`
	Photo            string           `json:"photo,omitempty"`
	CreatedAt        string           `json:"created_at,omitempty"`
}
