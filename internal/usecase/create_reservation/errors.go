package create_reservation

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrProfessorNotFound is returned when the professor does not exist
	ErrProfessorNotFound = errors.New("create_reservation: professor not found")

	// ErrAvailabilityNotSet is returned when the professor has no
	// configured office-hours window
	ErrAvailabilityNotSet = errors.New("create_reservation: availability not set")

	// ErrProfessorUnavailable is returned when the requested date falls
	// outside the professor's offered weekdays
	ErrProfessorUnavailable = errors.New("create_reservation: professor unavailable on this day")

	// ErrInvalidSlot is returned when the requested start time does not
	// match any generated slot boundary
	ErrInvalidSlot = errors.New("create_reservation: start time is not a valid slot")

	// ErrSlotNoLongerAvailable is returned when another student took the
	// slot first
	ErrSlotNoLongerAvailable = errors.New("create_reservation: slot no longer available")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("create_reservation: internal error")
)
