package get_available_slots

import (
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// generateSlots tiles the professor's window across the given calendar
// date. Pure: identical inputs always yield identical slots, and no
// reading of the current time happens anywhere in here.
//
// The tiling is half-open with a fixed step: [cursor, cursor+d) while
// cursor+d <= end. A trailing remainder shorter than one slot is
// dropped, not offered. Instants are composed in the professor's zone.
func generateSlots(w *domain.AvailabilityWindow, date time.Time, loc *time.Location) ([]domain.Slot, error) {
	// A date outside the offered weekdays is an unavailable day, not
	// an error: the caller gets an empty list.
	if !w.ContainsWeekday(dateWeekday(date)) {
		return []domain.Slot{}, nil
	}

	slots := make([]domain.Slot, 0)
	cursor := w.StartTime

	for {
		slotEnd, err := cursor.AddMinutes(w.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(w.EndTime) {
			break
		}

		slots = append(slots, domain.Slot{
			StartAt: composeInstant(date, cursor.Hour(), cursor.Minute(), loc),
			EndAt:   composeInstant(date, slotEnd.Hour(), slotEnd.Minute(), loc),
		})

		cursor = slotEnd
	}

	return slots, nil
}

// filterBooked removes slots whose start instant is already occupied.
// Adding reservations can only shrink the result, never grow it.
func filterBooked(slots []domain.Slot, reservations []*domain.Reservation) []domain.Slot {
	if len(reservations) == 0 {
		return slots
	}

	occupied := make(map[int64]struct{}, len(reservations))
	for _, r := range reservations {
		occupied[r.StartAt.Unix()] = struct{}{}
	}

	available := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if _, taken := occupied[s.StartAt.Unix()]; taken {
			continue
		}
		available = append(available, s)
	}
	return available
}

// composeInstant combines a calendar date with a wall-clock time in
// loc into an absolute instant.
func composeInstant(date time.Time, hour, minute int, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc)
}

// dateWeekday reads the weekday of a parsed calendar date. The date
// value carries no meaningful zone, only its Y/M/D components matter.
func dateWeekday(date time.Time) time.Weekday {
	return date.Weekday()
}

// dayBounds returns [startOfDay, startOfDay+24h) for the date in loc.
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}
