package domain

type Role string

const (
	RoleSuperadmin Role = "SUPERADMIN"
	RoleOrgAdmin   Role = "ORG_ADMIN"
	RoleUser       Role = "USER"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusDeleted   UserStatus = "DELETED"
)

type User struct {
	ID           int64      `json:"id"`
	Role         Role       `json:"role"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	Status       UserStatus `json:"status"`
	CreatedOn    string     `json:"created_on"`
	UpdatedOn    string     `json:"updated_on"`
}

// Actor is the authenticated identity attached to a request. Authorization
// predicates operate on the role plus ownership facts, never on raw strings.
type Actor struct {
	ID   int64 `json:"id"`
	Role Role  `json:"role"`
}

func (a Actor) IsSuperadmin() bool {
	return a.Role == RoleSuperadmin
}

// OwnsOrg reports whether the actor is an ORG_ADMIN and the literal creator
// of the organization identified by ownerID.
func (a Actor) OwnsOrg(ownerID int64) bool {
	return a.Role == RoleOrgAdmin && a.ID == ownerID
}

// CanManageOrg is the owner-or-superadmin capability used for every decide
// and mutate path on an organization's resources.
func (a Actor) CanManageOrg(ownerID int64) bool {
	return a.IsSuperadmin() || a.OwnsOrg(ownerID)
}
