package list_professors

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/service/professors/models"
)

type ProfessorService interface {
	List(ctx context.Context) (*models.ProfessorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
