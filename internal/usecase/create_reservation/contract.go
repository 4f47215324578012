package create_reservation

import (
	"context"
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/events"
	"github.com/tuj-devs/officehours-service/internal/watch"
)

// ProfessorRepository is the professor storage surface the use case
// needs.
type ProfessorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
}

// AvailabilityRepository is the availability storage surface the use
// case needs.
type AvailabilityRepository interface {
	GetByProfessor(ctx context.Context, professorID string) (*domain.AvailabilityWindow, error)
}

// ReservationRepository is the reservation storage surface the use
// case needs. ListByProfessorBetween locks the matched rows when
// called inside a transaction.
type ReservationRepository interface {
	ListByProfessorBetween(ctx context.Context, professorID string, from, to time.Time) ([]*domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// TxManager runs the booking under a serializable transaction.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Waker nudges live reservation-list subscribers after a commit.
type Waker interface {
	Wake(key watch.Key)
}

// EventPublisher emits the reservation-created event after a commit.
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, ev events.ReservationCreated)
}

// Logger is the logging interface for the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
