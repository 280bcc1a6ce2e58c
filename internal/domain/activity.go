package domain

type ActivityCategory string

const (
	ActivityCategoryAccess    ActivityCategory = "access"
	ActivityCategoryAdmin     ActivityCategory = "admin"
	ActivityCategoryFinancial ActivityCategory = "financial"
)

// ActivityLog is one entry in the fire-and-forget audit trail.
type ActivityLog struct {
	ID        string           `json:"id"`
	UserRole  StaffRole        `json:"user_role"`
	UserEmail string           `json:"user_email"`
	Action    string           `json:"action"`
	Details   string           `json:"details"`
	Timestamp string           `json:"timestamp"` // ISO date-time
	Category  ActivityCategory `json:"category"`
}
