package service

import (
	"context"
	"time"

	"volunteerhub-backend/internal/domain"
)

// AuthService handles registration, login and identity lookup.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, identifier, password string) (*domain.User, string, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
}

// OrgService covers organization CRUD and membership management by owners.
type OrgService interface {
	Create(ctx context.Context, actor domain.Actor, in OrgInput) (*domain.Organization, error)
	Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Organization, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Organization, error)
	Update(ctx context.Context, actor domain.Actor, id int64, in OrgInput) (*domain.Organization, error)
	ListMembers(ctx context.Context, actor domain.Actor, orgID int64) ([]domain.OrgMember, error)
	SuspendMember(ctx context.Context, actor domain.Actor, orgID, userID int64) (*domain.OrgMember, error)
}

// AdminService is the superadmin surface over organizations.
type AdminService interface {
	ListOrgs(ctx context.Context, actor domain.Actor, status domain.OrgStatus) ([]domain.Organization, error)
	ApproveOrg(ctx context.Context, actor domain.Actor, orgID int64) (*domain.Organization, error)
	SuspendOrg(ctx context.Context, actor domain.Actor, orgID int64) (*domain.Organization, error)
}

// StaffService is the staff-application workflow: apply, cancel, list, decide.
// List returns a readOnly flag that is true when the viewer is staff rather
// than the owner or a superadmin; staff may look but not decide.
type StaffService interface {
	Apply(ctx context.Context, actor domain.Actor, orgID int64, message string) (*domain.StaffApplication, error)
	Cancel(ctx context.Context, actor domain.Actor, orgID int64) (*domain.StaffApplication, error)
	Mine(ctx context.Context, actor domain.Actor, orgID int64) (*domain.StaffApplication, error)
	List(ctx context.Context, actor domain.Actor, orgID int64, status domain.ApplicationStatus) ([]domain.StaffApplication, bool, error)
	Decide(ctx context.Context, actor domain.Actor, orgID, appID int64, decision domain.Decision, note string) (*domain.StaffApplication, error)
	IsStaff(ctx context.Context, actor domain.Actor, orgID int64) (bool, error)
}

// EventService covers event lifecycle and listings.
type EventService interface {
	Create(ctx context.Context, actor domain.Actor, in EventInput) (*domain.Event, error)
	Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error)
	ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	ListByOrg(ctx context.Context, actor domain.Actor, orgID int64) ([]domain.Event, error)
	Publish(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error)
	Cancel(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error)
	Complete(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error)
	IsStaff(ctx context.Context, actor domain.Actor, id int64) (bool, error)
}

// ApplicationService is the event-application workflow.
type ApplicationService interface {
	Apply(ctx context.Context, actor domain.Actor, eventID int64, message string) (*domain.EventApplication, error)
	Cancel(ctx context.Context, actor domain.Actor, eventID int64) (*domain.EventApplication, error)
	// ListByEvent additionally reports whether the viewer has read-only
	// access, which is the case for staff who are not the owner.
	ListByEvent(ctx context.Context, actor domain.Actor, eventID int64, status domain.ApplicationStatus) ([]domain.EventApplication, bool, error)
	Decide(ctx context.Context, actor domain.Actor, eventID, appID int64, decision domain.Decision, note string) (*domain.EventApplication, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.MyApplication, error)
	History(ctx context.Context, actor domain.Actor) ([]domain.HistoryEntry, error)
}

// AttendanceService records and lists per-event attendance.
type AttendanceService interface {
	Mark(ctx context.Context, actor domain.Actor, eventID int64, in AttendanceInput) (*domain.Attendance, error)
	ListByEvent(ctx context.Context, actor domain.Actor, eventID int64) ([]domain.Attendance, error)
}

// CertificateService is owner-scoped certificate CRUD.
type CertificateService interface {
	Create(ctx context.Context, actor domain.Actor, in CertificateInput) (*domain.Certificate, error)
	Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Certificate, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Certificate, error)
	Update(ctx context.Context, actor domain.Actor, id int64, in CertificateInput) (*domain.Certificate, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

// EmailService sends best-effort notifications. Failures are logged, never
// surfaced to the caller.
type EmailService interface {
	SendEventDecision(to string, event *domain.Event, app *domain.EventApplication)
	SendStaffDecision(to string, org *domain.Organization, app *domain.StaffApplication)
}

type RegisterInput struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	OrgAdmin  bool   `json:"org_admin"`
}

type OrgInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

type EventInput struct {
	// OrgID comes from the request path, not the body.
	OrgID       int64      `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	BannerURL   string     `json:"banner_url"`
	Category    string     `json:"category"`
	City        string     `json:"city"`
	Address     string     `json:"address"`
	Lat         string     `json:"lat"`
	Lng         string     `json:"lng"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	Capacity    int32      `json:"capacity"`
}

type AttendanceInput struct {
	// UserID identifies the volunteer being marked; it comes from the
	// request path, not the body.
	UserID    int64                   `json:"-"`
	Status    domain.AttendanceStatus `json:"status"`
	CheckInAt *time.Time              `json:"check_in_at"`
	Note      string                  `json:"note"`
}

type CertificateInput struct {
	Title      string `json:"title"`
	Issuer     string `json:"issuer"`
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`
	FileURL    string `json:"file_url"`
	Note       string `json:"note"`
}
