package professors

import "errors"

var (
	// ErrInvalidInput is returned for malformed profile data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAccessDenied is returned when a user edits another user's profile
	ErrAccessDenied = errors.New("access denied")

	// ErrProfessorNotFound is returned when the professor does not exist
	ErrProfessorNotFound = errors.New("professor not found")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("service: internal error")
)
