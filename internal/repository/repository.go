package repository

import (
	"context"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
)

// Sentinel errors the Postgres implementations return for domain-relevant
// conditions. Services translate them into API-facing errors; anything else
// propagates as an opaque failure.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("record already exists")
	ErrNotPending   = errors.New("record is not pending")
	ErrCapacityFull = errors.New("capacity full")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByIdentifier resolves a login identifier that may be an email or a
	// phone number.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Organization, error)
	List(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	// Activate flips a PENDING organization to ACTIVE; ErrNotFound when the
	// org is missing or not pending.
	Activate(ctx context.Context, id int64) (*domain.Organization, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrgStatus) (*domain.Organization, error)
}

type MemberRepository interface {
	// IsActiveStaff reports whether the user holds an ACTIVE membership in
	// the organization.
	IsActiveStaff(ctx context.Context, orgID, userID int64) (bool, error)
	ListByOrg(ctx context.Context, orgID int64) ([]domain.OrgMember, error)
	// Suspend deactivates a membership without deleting it; ErrNotFound when
	// no row matches.
	Suspend(ctx context.Context, orgID, userID int64) (*domain.OrgMember, error)
}

type StaffApplicationRepository interface {
	// Create inserts a PENDING application; a (org, user) uniqueness
	// violation maps to ErrDuplicate.
	Create(ctx context.Context, app *domain.StaffApplication) error
	GetByOrgAndUser(ctx context.Context, orgID, userID int64) (*domain.StaffApplication, error)
	// CancelPending moves the caller's own PENDING application to CANCELLED;
	// ErrNotFound when there is none.
	CancelPending(ctx context.Context, orgID, userID int64) (*domain.StaffApplication, error)
	ListByOrg(ctx context.Context, orgID int64, status domain.ApplicationStatus) ([]domain.StaffApplication, error)
	// Decide runs the decision transaction: re-fetch the row, require
	// PENDING, set the decision, and on APPROVED upsert an ACTIVE membership
	// for (org, user) in the same transaction. ErrNotFound / ErrNotPending
	// on violation; nothing commits unless every step succeeds.
	Decide(ctx context.Context, orgID, appID, deciderID int64, decision domain.Decision, note string) (*domain.StaffApplication, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	// GetWithOrg fetches the event joined with its parent organization's
	// status and owner. ErrNotFound when the event does not exist.
	GetWithOrg(ctx context.Context, id int64) (*domain.Event, error)
	ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	ListByOrg(ctx context.Context, orgID int64) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) (*domain.Event, error)
	// CompletePastEvents marks PUBLISHED events whose window has closed
	// (end_at, or start_at when no end is set, before now) as COMPLETED and
	// returns how many rows changed.
	CompletePastEvents(ctx context.Context, now time.Time) (int64, error)
}

type EventApplicationRepository interface {
	// Create inserts a PENDING application; a (event, user) uniqueness
	// violation maps to ErrDuplicate.
	Create(ctx context.Context, app *domain.EventApplication) error
	CancelPending(ctx context.Context, eventID, userID int64) (*domain.EventApplication, error)
	ListByEvent(ctx context.Context, eventID int64, status domain.ApplicationStatus) ([]domain.EventApplication, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.MyApplication, error)
	CountApproved(ctx context.Context, eventID int64) (int32, error)
	HasApproved(ctx context.Context, eventID, userID int64) (bool, error)
	// Decide runs the decision transaction with the event row locked for the
	// duration: re-fetch the application, require PENDING, and when approving
	// into a capacity-limited event recount APPROVED rows inside the same
	// transaction. ErrNotFound / ErrNotPending / ErrCapacityFull on
	// violation.
	Decide(ctx context.Context, eventID, appID, deciderID int64, decision domain.Decision, note string) (*domain.EventApplication, error)
	History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
}

type AttendanceRepository interface {
	// Upsert inserts or overwrites the (event, user) attendance row.
	Upsert(ctx context.Context, att *domain.Attendance) error
	ListByEvent(ctx context.Context, eventID int64) ([]domain.Attendance, error)
}

type CertificateRepository interface {
	Create(ctx context.Context, cert *domain.Certificate) error
	GetByID(ctx context.Context, id, userID int64) (*domain.Certificate, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Certificate, error)
	// Update and Delete are owner-scoped; ErrNotFound when no row matches
	// both the id and the user.
	Update(ctx context.Context, cert *domain.Certificate) error
	Delete(ctx context.Context, id, userID int64) error
}
