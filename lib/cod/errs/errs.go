// Package errs defines the error kinds surfaced by the cod client.
// Every failure a caller can observe is one of these five types; they
// propagate unchanged from the component that detects them, with no
// retry or recovery along the way.
package errs

import (
	"encoding/json"
	"fmt"
)

// ValidationError reports bad caller input: an unknown platform tag, a
// non-numeric handle on the uno platform, a disallowed restricted
// platform, or an operation a title does not support.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Reason)
}

// AuthenticationError reports an operation attempted before the
// relevant backend's login succeeded, or credentials the upstream
// rejected outright.
type AuthenticationError struct {
	Backend string
	Reason  string
}

func (e AuthenticationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Backend, e.Reason)
}

// TransportError reports a failed network call or an upstream status
// of 500 or above.
type TransportError struct {
	StatusCode int
	Cause      error
}

func (e TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport: %s", e.Cause.Error())
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

func (e TransportError) Unwrap() error {
	return e.Cause
}

// ParseError reports a success status whose body was not valid JSON.
// The upstream answers requests carrying a stale or invalid token with
// an HTML login page on a 200, so callers should treat this kind as a
// prompt to re-authenticate rather than as a transport fault.
type ParseError struct {
	Cause error
}

func (e ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse: %s", e.Cause.Error())
	}
	return "parse: response body is not valid json"
}

func (e ParseError) Unwrap() error {
	return e.Cause
}

// UpstreamError carries a well-formed JSON error payload returned by
// the backend itself, verbatim.
type UpstreamError struct {
	Payload json.RawMessage
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("upstream error payload: %s", string(e.Payload))
}
