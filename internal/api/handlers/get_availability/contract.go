package get_availability

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/service/availability/models"
)

type AvailabilityService interface {
	Get(ctx context.Context, professorID string) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
