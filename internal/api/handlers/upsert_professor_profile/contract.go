package upsert_professor_profile

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/service/professors/models"
)

type ProfessorService interface {
	UpsertProfile(ctx context.Context, requesterID, professorID string, req *models.UpsertProfileRequest) (*models.ProfessorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
