package availability

import "errors"

var (
	// ErrWindowNotFound is returned when a professor has no availability window
	ErrWindowNotFound = errors.New("availability.repository: window not set")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
