package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// Event belongs to an organization. Capacity limits APPROVED applications;
// zero means unlimited. Only PUBLISHED events under an ACTIVE organization
// are publicly visible and appliable-to.
type Event struct {
	ID          int64       `json:"id"`
	OrgID       int64       `json:"org_id"`
	CreatedBy   int64       `json:"created_by"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	BannerURL   string      `json:"banner_url,omitempty"`
	Category    string      `json:"category,omitempty"`
	City        string      `json:"city,omitempty"`
	Address     string      `json:"address,omitempty"`
	Lat         string      `json:"lat,omitempty"`
	Lng         string      `json:"lng,omitempty"`
	StartAt     time.Time   `json:"start_at"`
	EndAt       *time.Time  `json:"end_at,omitempty"`
	Capacity    int32       `json:"capacity"`
	Status      EventStatus `json:"status"`
	CreatedOn   string      `json:"created_on"`
	UpdatedOn   string      `json:"updated_on"`

	// Joined organization fields, populated when the event is fetched with
	// its parent org.
	OrgName   string    `json:"org_name,omitempty"`
	OrgStatus OrgStatus `json:"org_status,omitempty"`
	OrgOwner  int64     `json:"-"`
}

// EventFilter narrows the public event listing.
type EventFilter struct {
	City  string
	Query string
	OrgID int64
}
