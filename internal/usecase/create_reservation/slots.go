package create_reservation

import (
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/pkg/types"
)

// checkSlotAlignment verifies the requested start matches the window's
// tiling: at or after the window start, an exact multiple of the slot
// duration from it, and with room for a full slot before the window
// end.
func checkSlotAlignment(w *domain.AvailabilityWindow, start types.TimeString) error {
	startMin := start.Hour()*60 + start.Minute()
	winStart := w.StartTime.Hour()*60 + w.StartTime.Minute()
	winEnd := w.EndTime.Hour()*60 + w.EndTime.Minute()

	if startMin < winStart {
		return ErrInvalidSlot
	}
	if (startMin-winStart)%w.SlotDurationMinutes != 0 {
		return ErrInvalidSlot
	}
	if startMin+w.SlotDurationMinutes > winEnd {
		return ErrInvalidSlot
	}
	return nil
}

// composeInstant combines a calendar date with a wall-clock time in
// loc into an absolute instant.
func composeInstant(date time.Time, hour, minute int, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc)
}

// dayBounds returns [startOfDay, startOfDay+24h) for the date in loc.
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}
