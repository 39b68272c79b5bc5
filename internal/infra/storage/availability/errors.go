package availability

import "errors"

var (
	// ErrBlockNotFound is returned when no availability block matches.
	ErrBlockNotFound = errors.New("availability.repository: block not found")

	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails.
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
