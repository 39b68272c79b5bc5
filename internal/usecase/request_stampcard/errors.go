package request_stampcard

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("request_stampcard: invalid input data")

	// ErrInvalidName is returned when the customer name is too short.
	ErrInvalidName = errors.New("request_stampcard: invalid customer name")

	// ErrInvalidEmail is returned when the email does not look like one.
	ErrInvalidEmail = errors.New("request_stampcard: invalid email address")

	// ErrCardExists is returned when a card already carries the email.
	ErrCardExists = errors.New("request_stampcard: card already exists for this email")

	// ErrRequestPending is returned when an unreviewed request already
	// exists for the email.
	ErrRequestPending = errors.New("request_stampcard: request already pending for this email")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("request_stampcard: internal error")
)
