package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Detail     string
	Errors     map[string][]string

	kind error
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Detail)
}

// Unwrap returns the sentinel matching the status code, or nil for codes
// without one.
func (e *APIError) Unwrap() error {
	return e.kind
}
