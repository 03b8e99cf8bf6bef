package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never reached the backend
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps HTTP 401: the token is missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps HTTP 404 for a single resource.
	ErrNotFound = errors.New("not found")
)

// ServerError carries the backend's human-readable message for a non-2xx
// response that does not map to a sentinel above.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}
