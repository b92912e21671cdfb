package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Membership errors
var (
	ErrNotMember       = errors.New("user is not a workspace member")
	ErrEditorRequired  = errors.New("editor role required")
	ErrAdminRequired   = errors.New("admin role required")
	ErrMissingIdentity = errors.New("missing caller identity")
	ErrMemberNotFound  = errors.New("workspace member not found")
)

// Meeting errors
var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrRevisionNotFound = errors.New("revision not found")
	ErrMeetingLocked    = errors.New("meeting is locked")
	ErrEmptyUpdate      = errors.New("neither meeting payload nor restore revision supplied")
	ErrInvalidPayload   = errors.New("meeting payload is not an object")
)

// Sync errors
var (
	ErrSyncFailed     = errors.New("canonical sync failed")
	ErrRevisionWrite  = errors.New("failed to record revision")
	ErrEntityNotFound = errors.New("canonical entity not found")
)
