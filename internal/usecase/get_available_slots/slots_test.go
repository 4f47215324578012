package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/pkg/types"
)

// 2026-04-06 is a Monday.
var monday = time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)

func tokyoWindow(start, end string, durationMin int) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ProfessorID:         "prof-1",
		DaysOfWeek:          []string{"Monday"},
		StartTime:           types.TimeString(start),
		EndTime:             types.TimeString(end),
		SlotDurationMinutes: durationMin,
		Timezone:            "Asia/Tokyo",
	}
}

func mustZone(t *testing.T, w *domain.AvailabilityWindow) *time.Location {
	t.Helper()
	loc, err := w.Zone()
	require.NoError(t, err)
	return loc
}

func TestGenerateSlots(t *testing.T) {
	t.Run("Tiles Half Open Intervals", func(t *testing.T) {
		w := tokyoWindow("09:00", "10:00", 15)
		slots, err := generateSlots(w, monday, mustZone(t, w))
		require.NoError(t, err)
		require.Len(t, slots, 4)

		loc := mustZone(t, w)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 0, 0, 0, loc), slots[0].StartAt)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 15, 0, 0, loc), slots[0].EndAt)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 45, 0, 0, loc), slots[3].StartAt)
		assert.Equal(t, time.Date(2026, 4, 6, 10, 0, 0, 0, loc), slots[3].EndAt)
	})

	t.Run("Drops Trailing Remainder", func(t *testing.T) {
		// 25 minutes of window, 10-minute slots: the 09:20-09:25
		// remainder is too short and must not be offered.
		w := tokyoWindow("09:00", "09:25", 10)
		slots, err := generateSlots(w, monday, mustZone(t, w))
		require.NoError(t, err)
		require.Len(t, slots, 2)

		loc := mustZone(t, w)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 0, 0, 0, loc), slots[0].StartAt)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 10, 0, 0, loc), slots[1].StartAt)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 20, 0, 0, loc), slots[1].EndAt)
	})

	t.Run("Duration Longer Than Window Yields Nothing", func(t *testing.T) {
		w := tokyoWindow("09:00", "09:25", 30)
		slots, err := generateSlots(w, monday, mustZone(t, w))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("Closed Weekday Yields Nothing", func(t *testing.T) {
		w := tokyoWindow("09:00", "10:00", 15)
		tuesday := monday.AddDate(0, 0, 1)
		slots, err := generateSlots(w, tuesday, mustZone(t, w))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("Deterministic", func(t *testing.T) {
		w := tokyoWindow("09:00", "12:00", 20)
		first, err := generateSlots(w, monday, mustZone(t, w))
		require.NoError(t, err)
		second, err := generateSlots(w, monday, mustZone(t, w))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Instants Composed In Professor Zone", func(t *testing.T) {
		w := tokyoWindow("09:00", "09:30", 30)
		slots, err := generateSlots(w, monday, mustZone(t, w))
		require.NoError(t, err)
		require.Len(t, slots, 1)

		// 09:00 JST is 00:00 UTC.
		assert.Equal(t, time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC).Unix(), slots[0].StartAt.Unix())
	})
}

func TestFilterBooked(t *testing.T) {
	w := tokyoWindow("09:00", "10:00", 15)
	loc := mustZone(t, w)
	slots, err := generateSlots(w, monday, loc)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	t.Run("Removes Occupied Starts", func(t *testing.T) {
		booked := []*domain.Reservation{
			{StartAt: time.Date(2026, 4, 6, 9, 0, 0, 0, loc)},
			{StartAt: time.Date(2026, 4, 6, 9, 30, 0, 0, loc)},
		}
		free := filterBooked(slots, booked)
		require.Len(t, free, 2)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 15, 0, 0, loc), free[0].StartAt)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 45, 0, 0, loc), free[1].StartAt)
	})

	t.Run("Matches By Instant Across Zones", func(t *testing.T) {
		// Same instant stored in UTC still blocks the JST slot.
		booked := []*domain.Reservation{
			{StartAt: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)},
		}
		free := filterBooked(slots, booked)
		require.Len(t, free, 3)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 15, 0, 0, loc), free[0].StartAt)
	})

	t.Run("No Reservations Keeps All", func(t *testing.T) {
		assert.Equal(t, slots, filterBooked(slots, nil))
	})

	t.Run("Only Shrinks", func(t *testing.T) {
		booked := []*domain.Reservation{
			{StartAt: time.Date(2026, 4, 6, 13, 0, 0, 0, loc)}, // outside the window
		}
		assert.Len(t, filterBooked(slots, booked), len(slots))
	})
}
