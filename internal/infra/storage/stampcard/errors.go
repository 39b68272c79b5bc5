package stampcard

import "errors"

var (
	// ErrCardNotFound is returned when no stamp card matches the identifier.
	ErrCardNotFound = errors.New("stampcard.repository: stamp card not found")

	// ErrRequestNotFound is returned when no card request matches.
	ErrRequestNotFound = errors.New("stampcard.repository: request not found")

	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("stampcard.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails.
	ErrExecQuery = errors.New("stampcard.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("stampcard.repository: failed to scan row")
)
