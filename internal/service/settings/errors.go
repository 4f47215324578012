package settings

import "errors"

var (
	// ErrInvalidInput is returned for malformed settings data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAccessDenied is returned when a user touches another user's settings
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("service: internal error")
)
