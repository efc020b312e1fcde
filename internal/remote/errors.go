// Package remote provides the HTTP client for the talent backend API.
// All operations return the backend's uniform {success, data, message}
// envelope decoded into domain types; an envelope with success=false is
// reported as the same error class as a transport failure.
package remote

import "fmt"

// Error represents a failed backend call.
type Error struct {
	Op         string // backend operation, e.g. "createResource"
	Message    string // human-readable detail, backend message when present
	StatusCode int    // HTTP status, 0 when the request never completed
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote %s failed: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("remote %s failed: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
