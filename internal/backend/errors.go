package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any backend error carrying a 404 status.
var ErrNotFound = errors.New("record not found")

// APIError is a backend-reported error: a non-2xx response whose envelope
// carried a status code and message. It is propagated unchanged to callers;
// the dashboard performs no retries beyond the auth-refresh cycle.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err represents a missing backend record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
