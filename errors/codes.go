package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_FORBIDDEN
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_MEETING_NOT_FOUND
	ErrorCode_REVISION_NOT_FOUND
	ErrorCode_MEETING_LOCKED
	ErrorCode_SYNC_FAILED
	ErrorCode_HTTP_OK
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:            "UNKNOWN",
	ErrorCode_INTERNAL:           "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:   "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:          "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:  "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:    "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:          "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:    "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:  "MEETING_NOT_FOUND",
	ErrorCode_REVISION_NOT_FOUND: "REVISION_NOT_FOUND",
	ErrorCode_MEETING_LOCKED:     "MEETING_LOCKED",
	ErrorCode_SYNC_FAILED:        "SYNC_FAILED",
	ErrorCode_HTTP_OK:            "OK",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
