package send_verification_code

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("send_verification_code: invalid input data")

	// ErrCardNotFound is returned when no card carries the email.
	ErrCardNotFound = errors.New("send_verification_code: stamp card not found")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("send_verification_code: internal error")
)
