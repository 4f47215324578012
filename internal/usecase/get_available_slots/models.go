package get_available_slots

import (
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// Request asks for the bookable slots of one professor on one
// calendar date. The date is interpreted in the professor's configured
// zone, never the caller's.
type Request struct {
	ProfessorID string
	Date        time.Time // calendar date, time-of-day part ignored
}

// Response carries the remaining bookable slots, ascending by start.
type Response struct {
	ProfessorID         string
	Date                string // YYYY-MM-DD
	Timezone            string
	Location            string
	SlotDurationMinutes int
	WindowSet           bool
	Slots               []domain.Slot
}
