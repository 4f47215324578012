package reservations

import (
	"context"
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/watch"
)

// ReservationRepository is the reservation storage surface for the
// service. List results are ascending by start instant; a nil endAfter
// means the full history.
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByStudent(ctx context.Context, studentID string, endAfter *time.Time) ([]*domain.Reservation, error)
	ListByProfessor(ctx context.Context, professorID string, endAfter *time.Time) ([]*domain.Reservation, error)
}

// SettingsProvider supplies the requester's display settings. It never
// fails: callers always get usable settings back.
type SettingsProvider interface {
	Get(ctx context.Context, userID string) *domain.UserSettings
}

// Hub turns a fetch function into a live snapshot subscription.
type Hub interface {
	Subscribe(ctx context.Context, key watch.Key, fetch watch.FetchFunc) (*watch.Subscription, error)
}

// Logger is the logging interface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
