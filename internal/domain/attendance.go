package domain

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// Attendance is the per-(event, user) outcome record. Marking is an upsert:
// the latest write wins.
type Attendance struct {
	ID        int64            `json:"id"`
	EventID   int64            `json:"event_id"`
	UserID    int64            `json:"user_id"`
	Status    AttendanceStatus `json:"status"`
	CheckInAt *time.Time       `json:"check_in_at,omitempty"`
	Note      string           `json:"note,omitempty"`
	MarkedBy  int64            `json:"marked_by"`
	MarkedAt  time.Time        `json:"marked_at"`

	// Joined user identity, populated by ListByEvent.
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}
