package verify_stampcard

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("verify_stampcard: invalid input data")

	// ErrCodeInvalid is returned when no code is live for the email or
	// the submitted digits do not match.
	ErrCodeInvalid = errors.New("verify_stampcard: invalid verification code")

	// ErrCodeExpired is returned when the live code has passed its expiry.
	ErrCodeExpired = errors.New("verify_stampcard: verification code expired")

	// ErrCardNotFound is returned when the verified email no longer maps
	// to a card.
	ErrCardNotFound = errors.New("verify_stampcard: stamp card not found")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("verify_stampcard: internal error")
)
