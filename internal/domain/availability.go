package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/tuj-devs/officehours-service/pkg/types"
)

var (
	// ErrInvalidWindow is returned when an availability window fails
	// validation. It is never partially applied.
	ErrInvalidWindow = errors.New("domain: invalid availability window")
)

// AvailabilityWindow is a professor's recurring weekly open range plus
// slot granularity. One row per professor, replaced wholesale on every
// update (last write wins).
type AvailabilityWindow struct {
	ProfessorID         string
	DaysOfWeek          []string // canonical names, see WeekdayNames
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	Location            string
	Timezone            string // IANA zone, authoritative for instant composition
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the window invariants: at least one day, a valid
// HH:MM range with start strictly before end, a positive duration
// within bounds, and a loadable IANA zone.
func (w *AvailabilityWindow) Validate() error {
	if len(w.DaysOfWeek) == 0 {
		return fmt.Errorf("%w: daysOfWeek must not be empty", ErrInvalidWindow)
	}
	if _, err := NormalizeDays(w.DaysOfWeek); err != nil {
		return err
	}
	if err := w.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidWindow, err)
	}
	if err := w.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidWindow, err)
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidWindow, w.StartTime, w.EndTime)
	}
	if w.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slotDurationMinutes must be positive", ErrInvalidWindow)
	}
	if w.SlotDurationMinutes < MinSlotDurationMinutes || w.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be in [%d, %d]",
			ErrInvalidWindow, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if len(w.Location) > MaxLocationLength {
		return fmt.Errorf("%w: location too long", ErrInvalidWindow)
	}
	if _, err := w.Zone(); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidWindow, w.Timezone, err)
	}
	return nil
}

// Zone loads the window's IANA zone, falling back to DefaultTimezone
// when unset.
func (w *AvailabilityWindow) Zone() (*time.Location, error) {
	tz := w.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}

// ContainsWeekday reports whether the window is open on day.
func (w *AvailabilityWindow) ContainsWeekday(day time.Weekday) bool {
	name := day.String()
	for _, d := range w.DaysOfWeek {
		if d == name {
			return true
		}
	}
	return false
}

// NormalizeDays validates weekday tags and returns them deduplicated
// and in canonical week order.
func NormalizeDays(days []string) ([]string, error) {
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		valid := false
		for _, name := range WeekdayNames {
			if d == name {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidWindow, d)
		}
		seen[d] = true
	}

	out := make([]string, 0, len(seen))
	for _, name := range WeekdayNames {
		if seen[name] {
			out = append(out, name)
		}
	}
	return out, nil
}
