package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuj-devs/officehours-service/internal/domain"
	availabilityRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/availability"
)

type fakeAvailabilityRepo struct {
	window *domain.AvailabilityWindow
	err    error
}

func (f *fakeAvailabilityRepo) GetByProfessor(_ context.Context, _ string) (*domain.AvailabilityWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.window, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	gotFrom      time.Time
	gotTo        time.Time
}

func (f *fakeReservationRepo) ListByProfessorBetween(_ context.Context, _ string, from, to time.Time) ([]*domain.Reservation, error) {
	f.gotFrom, f.gotTo = from, to
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetAvailableSlotsExecute(t *testing.T) {
	window := tokyoWindow("09:00", "09:25", 10)
	loc, err := window.Zone()
	require.NoError(t, err)

	t.Run("Offers Remaining Slots", func(t *testing.T) {
		reservations := &fakeReservationRepo{
			reservations: []*domain.Reservation{
				{StartAt: time.Date(2026, 4, 6, 9, 0, 0, 0, loc)},
			},
		}
		uc := NewUseCase(&fakeAvailabilityRepo{window: window}, reservations, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{ProfessorID: "prof-1", Date: monday})
		require.NoError(t, err)

		assert.True(t, resp.WindowSet)
		assert.Equal(t, "2026-04-06", resp.Date)
		assert.Equal(t, 10, resp.SlotDurationMinutes)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, time.Date(2026, 4, 6, 9, 10, 0, 0, loc).Unix(), resp.Slots[0].StartAt.Unix())

		// The occupancy query covers the professor's whole local day.
		assert.Equal(t, time.Date(2026, 4, 6, 0, 0, 0, 0, loc).Unix(), reservations.gotFrom.Unix())
		assert.Equal(t, time.Date(2026, 4, 7, 0, 0, 0, 0, loc).Unix(), reservations.gotTo.Unix())
	})

	t.Run("No Window Configured", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityRepo{err: availabilityRepo.ErrWindowNotFound}, &fakeReservationRepo{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{ProfessorID: "prof-1", Date: monday})
		require.NoError(t, err)
		assert.False(t, resp.WindowSet)
		assert.Empty(t, resp.Slots)
	})

	t.Run("Unreadable Reservations Offer Nothing", func(t *testing.T) {
		reservations := &fakeReservationRepo{err: errors.New("connection refused")}
		uc := NewUseCase(&fakeAvailabilityRepo{window: window}, reservations, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{ProfessorID: "prof-1", Date: monday})
		require.NoError(t, err)
		assert.True(t, resp.WindowSet)
		assert.Empty(t, resp.Slots)
	})

	t.Run("Availability Store Failure Surfaces", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityRepo{err: errors.New("connection refused")}, &fakeReservationRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{ProfessorID: "prof-1", Date: monday})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("Closed Weekday Skips Occupancy Query", func(t *testing.T) {
		reservations := &fakeReservationRepo{err: errors.New("must not be called")}
		uc := NewUseCase(&fakeAvailabilityRepo{window: window}, reservations, nopLogger{})

		tuesday := monday.AddDate(0, 0, 1)
		resp, err := uc.Execute(context.Background(), &Request{ProfessorID: "prof-1", Date: tuesday})
		require.NoError(t, err)
		assert.True(t, resp.WindowSet)
		assert.Empty(t, resp.Slots)
	})

	t.Run("Validation", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityRepo{window: window}, &fakeReservationRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: monday})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{ProfessorID: "prof-1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
