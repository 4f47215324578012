package create_reservation

import (
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/pkg/types"
)

// Request books one slot. Student identity comes from the
// authenticated caller, never from the request body. Date and
// StartTime identify the slot in the professor's configured zone; the
// server recomputes the absolute instants itself.
type Request struct {
	ProfessorID string
	StudentID   string
	StudentName string
	Date        time.Time // calendar date, time-of-day part ignored
	StartTime   types.TimeString
	Note        *string
}

// Response carries the committed reservation.
type Response struct {
	Reservation *domain.Reservation
}
