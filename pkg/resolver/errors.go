package resolver

import (
	"errors"
	"fmt"
)

// Class is the failure taxonomy for a resolution attempt.
type Class string

const (
	// ClassLayoutDrift means an expected page control was missing, the site
	// layout likely changed.
	ClassLayoutDrift Class = "site_layout_drift"
	// ClassQualityUnavailable means the requested quality option was absent.
	ClassQualityUnavailable Class = "quality_unavailable"
	// ClassServerUnavailable means the supported server entry was missing.
	ClassServerUnavailable Class = "server_unavailable"
	// ClassAdInterception means ad windows kept intercepting a click after
	// the retry allowance was spent.
	ClassAdInterception Class = "ad_interception_exceeded"
	// ClassTimedOut means a gate never produced its control within the
	// ceiling.
	ClassTimedOut Class = "timed_out"
	// ClassExtractionFailed means neither the DOM nor observed network
	// traffic yielded a direct media URL.
	ClassExtractionFailed Class = "extraction_failed"
	// ClassAborted means the attempt was cancelled from outside.
	ClassAborted Class = "aborted"
)

// Error is a typed resolution failure carrying the state reached and the
// attempts consumed.
type Error struct {
	Class    Class
	State    State
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolution failed (%s) in state %s after %d attempt(s): %v", e.Class, e.State, e.Attempts, e.Err)
	}
	return fmt.Sprintf("resolution failed (%s) in state %s after %d attempt(s)", e.Class, e.State, e.Attempts)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transient reports whether an error is worth another resolution attempt.
// Gate timeouts and plain network errors are transient; missing controls and
// failed extraction are structural and retrying cannot help.
func Transient(err error) bool {
	var resErr *Error
	if !errors.As(err, &resErr) {
		return true
	}
	return resErr.Class == ClassTimedOut
}
