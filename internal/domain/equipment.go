package domain

type EquipmentState string

const (
	EquipmentStateOld EquipmentState = "old"
	EquipmentStateNew EquipmentState = "new"
)

type EquipmentCondition string

const (
	EquipmentConditionFaulty    EquipmentCondition = "faulty"
	EquipmentConditionNonFaulty EquipmentCondition = "non-faulty"
)

type GymEquipment struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	State     EquipmentState     `json:"state"`
	Condition EquipmentCondition `json:"condition"`
	CreatedAt string             `json:"created_at,omitempty"`
	UpdatedAt string             `json:"updated_at,omitempty"`
}

// MaintenanceLog records a maintenance action taken on a piece of
// equipment, attributed to the staff member who performed it.
type MaintenanceLog struct {
	ID            string `json:"id"`
	EquipmentName string `json:"equipment_name"`
	Description   string `json:"description"`
	DateTime      string `json:"date_time"` // ISO date-time
	StaffName     string `json:"staff_name"`
	StaffEmail    string `json:"staff_email,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type Expense struct {
	ID          string  `json:"id"`
	ItemName    string  `json:"item_name"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	DateTime    string  `json:"date_time"` // ISO date-time
	StaffName   string  `json:"staff_name"`
	StaffEmail  string  `json:"staff_email,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
