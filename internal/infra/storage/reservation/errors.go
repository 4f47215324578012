package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when a reservation does not exist
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken is returned when an insert collides with the unique
	// (professor_id, start_at) index, i.e. the booking race was lost
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
