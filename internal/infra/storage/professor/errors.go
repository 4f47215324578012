package professor

import "errors"

var (
	// ErrProfessorNotFound is returned when a professor does not exist
	ErrProfessorNotFound = errors.New("professor.repository: professor not found")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("professor.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("professor.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("professor.repository: failed to scan row")
)
