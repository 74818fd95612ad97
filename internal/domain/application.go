package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusApproved  ApplicationStatus = "APPROVED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"
)

// Decision is the subset of statuses a manager may set on a pending
// application.
type Decision = ApplicationStatus

// EventApplication is a user's request to volunteer for an event.
// Unique per (event, user).
type EventApplication struct {
	ID           int64             `json:"id"`
	EventID      int64             `json:"event_id"`
	UserID       int64             `json:"user_id"`
	Status       ApplicationStatus `json:"status"`
	Message      string            `json:"message,omitempty"`
	DecidedBy    *int64            `json:"decided_by,omitempty"`
	DecidedAt    *time.Time        `json:"decided_at,omitempty"`
	DecisionNote string            `json:"decision_note,omitempty"`
	CreatedOn    string            `json:"created_on"`

	// Joined applicant identity, populated by ListByEvent.
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// StaffApplication is a user's request to join an organization's staff.
// Unique per (org, user); approval upserts the matching OrgMember row in the
// same transaction.
type StaffApplication struct {
	ID           int64             `json:"id"`
	OrgID        int64             `json:"org_id"`
	UserID       int64             `json:"user_id"`
	Status       ApplicationStatus `json:"status"`
	Message      string            `json:"message,omitempty"`
	DecidedBy    *int64            `json:"decided_by,omitempty"`
	DecidedAt    *time.Time        `json:"decided_at,omitempty"`
	DecisionNote string            `json:"decision_note,omitempty"`
	CreatedOn    string            `json:"created_on"`
	UpdatedOn    string            `json:"updated_on"`

	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// MyApplication is an applicant-facing row: the application joined with its
// event and organization.
type MyApplication struct {
	ApplicationID int64             `json:"application_id"`
	Status        ApplicationStatus `json:"status"`
	CreatedOn     string            `json:"created_on"`
	EventID       int64             `json:"event_id"`
	EventTitle    string            `json:"event_title"`
	StartAt       time.Time         `json:"start_at"`
	OrgName       string            `json:"org_name"`
}

// HistoryEntry is one completed-volunteering row: an approved application
// joined with its attendance outcome, if any.
type HistoryEntry struct {
	EventID           int64             `json:"event_id"`
	EventTitle        string            `json:"event_title"`
	StartAt           time.Time         `json:"start_at"`
	OrgName           string            `json:"org_name"`
	ApplicationStatus ApplicationStatus `json:"application_status"`
	AttendanceStatus  string            `json:"attendance_status,omitempty"`
	CheckInAt         *time.Time        `json:"check_in_at,omitempty"`
}
