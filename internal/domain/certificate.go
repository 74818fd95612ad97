package domain

// Certificate is a free-form record of an external volunteering credential.
// Pure CRUD, owned by a single user.
type Certificate struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Title      string `json:"title"`
	Issuer     string `json:"issuer,omitempty"`
	IssueDate  string `json:"issue_date,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	FileURL    string `json:"file_url"`
	Note       string `json:"note,omitempty"`
	CreatedOn  string `json:"created_on"`
	UpdatedOn  string `json:"updated_on"`
}
