package domain

type OrgStatus string

const (
	OrgStatusPending   OrgStatus = "PENDING"
	OrgStatusActive    OrgStatus = "ACTIVE"
	OrgStatusSuspended OrgStatus = "SUSPENDED"
	OrgStatusDeleted   OrgStatus = "DELETED"
)

type Organization struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      OrgStatus `json:"status"`
	CreatedBy   int64     `json:"created_by"`
	CreatedOn   string    `json:"created_on"`
	UpdatedOn   string    `json:"updated_on"`
}

type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "ACTIVE"
	MemberStatusSuspended MemberStatus = "SUSPENDED"
	MemberStatusDeleted   MemberStatus = "DELETED"
)

type OrgRole string

const OrgRoleStaff OrgRole = "STAFF"

// OrgMember links a user to an organization as staff. Unique per (org, user);
// removal suspends the row instead of deleting it so re-approval reactivates.
type OrgMember struct {
	ID        int64        `json:"id"`
	OrgID     int64        `json:"org_id"`
	UserID    int64        `json:"user_id"`
	OrgRole   OrgRole      `json:"org_role"`
	Status    MemberStatus `json:"status"`
	CreatedOn string       `json:"created_on"`

	// Joined user identity, populated by member listings.
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}
