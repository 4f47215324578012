package availability

import "errors"

var (
	// ErrInvalidWindow is returned for an office-hours window that fails
	// validation
	ErrInvalidWindow = errors.New("invalid availability window")

	// ErrAccessDenied is returned when a user edits another professor's
	// window
	ErrAccessDenied = errors.New("access denied")

	// ErrProfessorNotFound is returned when the professor does not exist
	ErrProfessorNotFound = errors.New("professor not found")

	// ErrAvailabilityNotSet is returned when the professor has no
	// configured window
	ErrAvailabilityNotSet = errors.New("availability not set")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("service: internal error")
)
