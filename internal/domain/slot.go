package domain

import "time"

// Slot is a discrete bookable interval derived from an availability
// window, with boundaries already composed into absolute instants in
// the professor's zone.
type Slot struct {
	StartAt time.Time
	EndAt   time.Time
}

// Duration returns the slot length.
func (s Slot) Duration() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// Contains reports whether t falls inside the half-open interval
// [StartAt, EndAt).
func (s Slot) Contains(t time.Time) bool {
	return !t.Before(s.StartAt) && t.Before(s.EndAt)
}
