package domain

type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "low"
	PriorityMedium AnnouncementPriority = "medium"
	PriorityHigh   AnnouncementPriority = "high"
)

type Announcement struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Content  string               `json:"content"`
	Date     string               `json:"date"` // YYYY-MM-DD
	Priority AnnouncementPriority `json:"priority"`
}
