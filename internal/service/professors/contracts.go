package professors

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// ProfessorRepository is the professor storage surface for the service.
type ProfessorRepository interface {
	Upsert(ctx context.Context, p *domain.Professor) (*domain.Professor, error)
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
	List(ctx context.Context) ([]*domain.Professor, error)
}

// Logger is the logging interface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
