package domain

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodMomo PaymentMethod = "Mobile Money"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusConfirmed PaymentStatus = "Confirmed"
	PaymentStatusRejected  PaymentStatus = "Rejected"
)

// PendingMember is the full registration snapshot embedded in a payment
// taken before the member record exists. Confirmation materializes a Member
// from it.
type PendingMember struct {
	FullName   string           `json:"full_name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone,omitempty"`
	Address    string           `json:"address,omitempty"`
	Photo      string           `json:"photo,omitempty"`
	Plan       SubscriptionPlan `json:"plan"`
	StartDate  string           `json:"start_date,omitempty"`
	ExpiryDate string           `json:"expiry_date,omitempty"`
}

// PaymentRecord tracks one payment from creation to confirmation or
// rejection. MemberID is empty while Pending holds a snapshot; after a
// pending-member payment is confirmed MemberID is populated and
// IsPendingMember stays true as a historical marker.
type PaymentRecord struct {
	ID          string        `json:"id"`
	MemberID    string        `json:"member_id,omitempty"`
	MemberName  string        `json:"member_name"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Method      PaymentMethod `json:"method"`
	Status      PaymentStatus `json:"status"`
	ConfirmedBy string        `json:"confirmed_by,omitempty"`

	// Mobile money metadata, all optional
	TransactionID string `json:"transaction_id,omitempty"`
	MomoPhone     string `json:"momo_phone,omitempty"`
	Network       string `json:"network,omitempty"`

	IsPendingMember bool           `json:"is_pending_member,omitempty"`
	Pending         *PendingMember `json:"pending_member,omitempty"`
}

// Finalized reports whether the payment has left the Pending state.
// Confirmed and Rejected are terminal.
func (p *PaymentRecord) Finalized() bool {
	return p.Status != PaymentStatusPending
}
