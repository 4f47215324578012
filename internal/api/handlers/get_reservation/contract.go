package get_reservation

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, reservationID, requesterID string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
