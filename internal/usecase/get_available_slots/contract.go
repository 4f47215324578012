package get_available_slots

import (
	"context"
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// AvailabilityRepository is the availability storage surface the use
// case needs.
type AvailabilityRepository interface {
	GetByProfessor(ctx context.Context, professorID string) (*domain.AvailabilityWindow, error)
}

// ReservationRepository is the reservation storage surface the use
// case needs.
type ReservationRepository interface {
	ListByProfessorBetween(ctx context.Context, professorID string, from, to time.Time) ([]*domain.Reservation, error)
}

// Logger is the logging interface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
