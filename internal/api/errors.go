package api

import (
	"encoding/json"
	"fmt"
)

// ErrRemote carries a non-2xx response from the service. Message holds
// the service's own error text when the body provided one, surfaced
// verbatim to the user.
type ErrRemote struct {
	Status  int
	Message string
}

func (e *ErrRemote) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote service (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote service returned HTTP %d", e.Status)
}

// ErrInvalidPayload indicates the service returned a body that does not
// conform to the expected schema.
type ErrInvalidPayload struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid response payload: %v", e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
