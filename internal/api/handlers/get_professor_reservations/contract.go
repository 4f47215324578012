package get_professor_reservations

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/service/reservations/models"
	"github.com/tuj-devs/officehours-service/internal/watch"
)

type ReservationService interface {
	ListForProfessor(ctx context.Context, professorID, requesterID string, upcoming bool) (*models.ReservationListResponse, error)
	WatchProfessor(ctx context.Context, professorID, requesterID string, upcoming bool) (*watch.Subscription, error)
	RenderList(ctx context.Context, requesterID string, list []*domain.Reservation) *models.ReservationListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
