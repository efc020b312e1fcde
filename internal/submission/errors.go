package submission

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when Submit is called while a prior
// submission on the same submitter has not reached a terminal state. The
// saga's multi-stage nature makes concurrent invocations on one draft
// unsafe, so the second call is rejected before any network traffic.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ErrReferenceDataNotReady is returned when Submit is attempted before the
// skills and categories reference lists have both loaded.
var ErrReferenceDataNotReady = errors.New("reference data has not finished loading")

// ErrMissingResourceID is returned for an update submission whose draft
// was never populated from an existing resource.
var ErrMissingResourceID = errors.New("update requires a draft populated from an existing resource")

// StageError wraps the cause of a failed stage.
type StageError struct {
	Stage Stage
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("submission failed at %s: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}
