package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport failures where no response was received.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized marks 401 responses; callers treat it as "not
	// authenticated" and discard the stored credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-success backend response. Message carries the backend's
// "message" field when present, otherwise a generic per-status fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// UserMessage extracts a display-ready message from any error returned by
// the transport or a service: the backend message when one was reported,
// otherwise the supplied fallback.
func UserMessage(err error, fallback string) string {
	var backendErr *Error
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	return fallback
}
