package apiclient

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned before any network I/O when no bearer
// credential is available for an authenticated call.
var ErrUnauthorized = errors.New("Unauthorized: No auth token found")

// ServerError is a non-2xx response from the user API, carrying the message
// parsed from the body or a generic fallback.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// TransportError means the request could not complete at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
