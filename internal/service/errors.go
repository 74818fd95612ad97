package service

import "net/http"

// Error is an API-facing failure with a stable machine code. The HTTP layer
// maps Status directly onto the response.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUnauthorized       = &Error{Code: "UNAUTHORIZED", Status: http.StatusUnauthorized, Message: "authentication required"}
	ErrInvalidCredentials = &Error{Code: "INVALID_CREDENTIALS", Status: http.StatusUnauthorized, Message: "invalid credentials"}
	ErrForbidden          = &Error{Code: "FORBIDDEN", Status: http.StatusForbidden, Message: "insufficient permissions"}
	ErrAccountNotActive   = &Error{Code: "ACCOUNT_NOT_ACTIVE", Status: http.StatusForbidden, Message: "account is not active"}
	ErrIdentityTaken      = &Error{Code: "IDENTITY_TAKEN", Status: http.StatusConflict, Message: "email or phone already registered"}

	ErrOrgNotFound   = &Error{Code: "ORG_NOT_FOUND", Status: http.StatusNotFound, Message: "organization not found"}
	ErrOrgNotActive  = &Error{Code: "ORG_NOT_ACTIVE", Status: http.StatusBadRequest, Message: "organization is not active"}
	ErrOrgNotPending = &Error{Code: "ORG_NOT_PENDING", Status: http.StatusBadRequest, Message: "organization is not pending approval"}

	ErrEventNotFound      = &Error{Code: "EVENT_NOT_FOUND", Status: http.StatusNotFound, Message: "event not found"}
	ErrEventNotOpen       = &Error{Code: "EVENT_NOT_OPEN", Status: http.StatusBadRequest, Message: "event is not open for applications"}
	ErrEventStarted       = &Error{Code: "EVENT_STARTED", Status: http.StatusBadRequest, Message: "event has already started"}
	ErrCapacityFull       = &Error{Code: "CAPACITY_FULL", Status: http.StatusBadRequest, Message: "event capacity is full"}
	ErrInvalidEventWindow = &Error{Code: "INVALID_EVENT_WINDOW", Status: http.StatusBadRequest, Message: "event end must not precede its start"}

	ErrAlreadyApplied        = &Error{Code: "ALREADY_APPLIED", Status: http.StatusConflict, Message: "application already exists"}
	ErrAlreadyStaff          = &Error{Code: "ALREADY_STAFF", Status: http.StatusConflict, Message: "user is already active staff"}
	ErrApplicationNotFound   = &Error{Code: "APPLICATION_NOT_FOUND", Status: http.StatusNotFound, Message: "application not found"}
	ErrApplicationNotPending = &Error{Code: "APPLICATION_NOT_PENDING", Status: http.StatusBadRequest, Message: "application is not pending"}
	ErrNoPendingApplication  = &Error{Code: "NO_PENDING_APPLICATION", Status: http.StatusNotFound, Message: "no pending application to cancel"}

	ErrMemberNotFound      = &Error{Code: "MEMBER_NOT_FOUND", Status: http.StatusNotFound, Message: "member not found"}
	ErrNotApproved         = &Error{Code: "NOT_APPROVED", Status: http.StatusBadRequest, Message: "user has no approved application for this event"}
	ErrCertificateNotFound = &Error{Code: "CERTIFICATE_NOT_FOUND", Status: http.StatusNotFound, Message: "certificate not found"}

	ErrValidation = &Error{Code: "VALIDATION", Status: http.StatusBadRequest, Message: "invalid request"}
)

// Invalid returns a VALIDATION error with a specific message.
func Invalid(msg string) *Error {
	return &Error{Code: "VALIDATION", Status: http.StatusBadRequest, Message: msg}
}
