package domain

import (
	"errors"
	"fmt"
)

// Sentinels shared by the API adapters (same shape as any outbound
// client: 404/401/403 map here, everything else wraps a ServerError).
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Auth failures are deliberately generic: the UI shows one message for
// bad credentials and one for duplicate registration.
var (
	ErrBadCredentials    = errors.New("invalid credentials")
	ErrAlreadyRegistered = errors.New("email already registered")
)

// Upload pre-check and re-entrancy sentinels. Wrapped with the offending
// file name, e.g. fmt.Errorf("%s: %w", name, ErrInvalidType).
var (
	ErrInvalidType    = errors.New("not an image file")
	ErrTooLarge       = errors.New("file exceeds size limit")
	ErrUploadInFlight = errors.New("an upload is already in progress")
)

// ValidationError blocks the triggering action locally; no network call
// is issued while one is pending.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ServerError is a non-2xx response from a remote service.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string { return fmt.Sprintf("remote %d", e.Status) }

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
