package availability

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// AvailabilityRepository is the availability storage surface for the
// service.
type AvailabilityRepository interface {
	Upsert(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetByProfessor(ctx context.Context, professorID string) (*domain.AvailabilityWindow, error)
}

// ProfessorRepository is the professor storage surface for the service.
type ProfessorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
}

// Logger is the logging interface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
