package domain

// ClientCheckIn records a walk-in client visit. CheckOutTime stays empty
// until the client leaves.
type ClientCheckIn struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Date         string `json:"date"` // YYYY-MM-DD
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// AttendanceRecord tracks a staff member's work day.
type AttendanceRecord struct {
	ID          string    `json:"id"`
	StaffEmail  string    `json:"staff_email"`
	StaffRole   StaffRole `json:"staff_role"`
	Date        string    `json:"date"` // YYYY-MM-DD
	SignInTime  string    `json:"sign_in_time"`
	SignOutTime string    `json:"sign_out_time,omitempty"`
}
