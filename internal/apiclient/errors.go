package apiclient

import (
	"errors"
	"fmt"
)

// Kind buckets a failed call for programmatic branching.
type Kind string

const (
	// KindUnauthorized means the server rejected the session (401).
	KindUnauthorized Kind = "unauthorized"
	// KindServer means the server itself failed (status >= 500).
	KindServer Kind = "server_error"
	// KindAPI means the server rejected the request and said why
	// (4xx with a message field, e.g. a validation failure).
	KindAPI Kind = "api_error"
	// KindUnknown covers everything else, including pure
	// connectivity failures that never produced a status code.
	KindUnknown Kind = "unknown"
)

// Error is the uniform failure every API call returns. StatusCode is
// zero when the request never reached the server. Message is the
// server-supplied message when one exists, else the canned text that
// was shown to the user.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ErrorKind extracts the classification of err, or "" when err did not
// come out of this client.
func ErrorKind(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
