package domain

type StaffRole string

const (
	RolePublic     StaffRole = "PUBLIC"
	RoleStaff      StaffRole = "STAFF"
	RoleSuperAdmin StaffRole = "SUPER_ADMIN"
)

type Privilege string

const (
	PrivilegeManageMembers        Privilege = "MANAGE_MEMBERS"
	PrivilegeDeleteMembers        Privilege = "DELETE_MEMBERS"
	PrivilegeManagePayments       Privilege = "MANAGE_PAYMENTS"
	PrivilegeConfirmPayments      Privilege = "CONFIRM_PAYMENTS"
	PrivilegeManageAnnouncements  Privilege = "MANAGE_ANNOUNCEMENTS"
	PrivilegeViewActivityLogs     Privilege = "VIEW_ACTIVITY_LOGS"
	PrivilegeManageStaff          Privilege = "MANAGE_STAFF"
	PrivilegeViewRevenueAnalytics Privilege = "VIEW_REVENUE_ANALYTICS"
)

type StaffMember struct {
	ID           string      `json:"id"`
	FullName     string      `json:"full_name"`
	Email        string      `json:"email"`
	Role         StaffRole   `json:"role"`
	Position     string      `json:"position"`
	Phone        string      `json:"phone"`
	Avatar       string      `json:"avatar,omitempty"`
	Privileges   []Privilege `json:"privileges,omitempty"`
	PasswordHash string      `json:"-"`
	CreatedAt    string      `json:"created_at,omitempty"`
}

// HasPrivilege reports whether the staff member may perform a privileged
// action. Super admins implicitly hold every privilege.
func (s *StaffMember) HasPrivilege(p Privilege) bool {
	if s.Role == RoleSuperAdmin {
		return true
	}
	for _, held := range s.Privileges {
		if held == p {
			return true
		}
	}
	return false
}
