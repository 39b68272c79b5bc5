package lookup_stampcard

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("lookup_stampcard: invalid input data")

	// ErrCardNotFound is returned when no card matches the identifier.
	ErrCardNotFound = errors.New("lookup_stampcard: stamp card not found")

	// ErrNoEmailOnCard is returned when the matched card has no email to
	// verify against.
	ErrNoEmailOnCard = errors.New("lookup_stampcard: card has no email on file")

	// ErrInternal is returned on unexpected usecase failures.
	ErrInternal = errors.New("lookup_stampcard: internal error")
)
