package codes

import "errors"

var (
	// ErrCodeNotFound is returned when no live code exists for the email.
	ErrCodeNotFound = errors.New("codes.store: verification code not found")

	// ErrStore is returned when the underlying Redis operation fails.
	ErrStore = errors.New("codes.store: redis operation failed")

	// ErrBadValue is returned when a stored value does not parse.
	ErrBadValue = errors.New("codes.store: malformed stored value")
)
