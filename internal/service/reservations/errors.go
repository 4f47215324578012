package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when the requester is neither the
	// student nor the professor of the reservation
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("service: internal error")
)
