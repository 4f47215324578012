package domain

import "time"

// Reservation is a committed booking of one slot. Immutable after
// creation; both parties can see it, the booking transaction owns its
// lifecycle.
type Reservation struct {
	ID          string
	ProfessorID string
	StudentID   string

	// Display copies captured at booking time, deliberately not kept
	// in sync with later profile edits.
	ProfessorName string
	StudentName   string

	StartAt time.Time
	EndAt   time.Time
	Note    *string

	CreatedAt time.Time
}

// IsUpcoming reports whether the reservation has not finished yet.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.EndAt.After(now)
}

// InvolvedUser reports whether userID is a party to the reservation.
func (r *Reservation) InvolvedUser(userID string) bool {
	return r.StudentID == userID || r.ProfessorID == userID
}
