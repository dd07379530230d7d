package remote

import (
	"errors"
	"fmt"
)

// ErrLocationUnavailable means no coordinates could be determined, so the
// weather flow stops before any request is made.
var ErrLocationUnavailable = errors.New("location unavailable")

// ErrLocationDenied stands in for a denied location permission.
var ErrLocationDenied = errors.New("location permission denied")

// NetworkError covers connection failures, timeouts and non-2xx responses.
// StatusCode is zero when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError wraps a malformed response body.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
