package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuj-devs/officehours-service/internal/domain"
	reservationRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/reservation"
	"github.com/tuj-devs/officehours-service/internal/watch"
)

type fakeRepo struct {
	byID        *domain.Reservation
	byIDErr     error
	list        []*domain.Reservation
	listErr     error
	gotEndAfter *time.Time
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*domain.Reservation, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeRepo) ListByStudent(_ context.Context, _ string, endAfter *time.Time) ([]*domain.Reservation, error) {
	f.gotEndAfter = endAfter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeRepo) ListByProfessor(_ context.Context, _ string, endAfter *time.Time) ([]*domain.Reservation, error) {
	f.gotEndAfter = endAfter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

type fixedSettings struct{}

func (fixedSettings) Get(_ context.Context, userID string) *domain.UserSettings {
	return &domain.UserSettings{UserID: userID, Timezone: "Asia/Tokyo", Is24Hour: true}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, fixedSettings{}, watch.NewHub(nopLogger{}), nopLogger{})
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            "res-1",
		ProfessorID:   "prof-1",
		StudentID:     "stud-1",
		ProfessorName: "Prof. Sato",
		StudentName:   "Aiko Tanaka",
		StartAt:       time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		EndAt:         time.Date(2026, 4, 6, 0, 15, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	t.Run("Visible To Both Participants", func(t *testing.T) {
		svc := newService(&fakeRepo{byID: sampleReservation()})

		for _, requester := range []string{"stud-1", "prof-1"} {
			resp, err := svc.GetByID(context.Background(), "res-1", requester)
			require.NoError(t, err)
			assert.Equal(t, "res-1", resp.ID)
		}
	})

	t.Run("Renders Display Fields In Requester Zone", func(t *testing.T) {
		svc := newService(&fakeRepo{byID: sampleReservation()})

		resp, err := svc.GetByID(context.Background(), "res-1", "stud-1")
		require.NoError(t, err)

		// 2026-04-06T00:00Z is 09:00 JST.
		assert.Equal(t, "09:00", resp.DisplayStart)
		assert.Equal(t, "09:15", resp.DisplayEnd)
		assert.Equal(t, "Mon, Apr 6 2026", resp.DisplayDay)
	})

	t.Run("Hidden From Third Parties", func(t *testing.T) {
		svc := newService(&fakeRepo{byID: sampleReservation()})

		_, err := svc.GetByID(context.Background(), "res-1", "stud-2")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := newService(&fakeRepo{byIDErr: reservationRepo.ErrReservationNotFound})

		_, err := svc.GetByID(context.Background(), "res-9", "stud-1")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("Store Failure Surfaces", func(t *testing.T) {
		svc := newService(&fakeRepo{byIDErr: errors.New("connection refused")})

		_, err := svc.GetByID(context.Background(), "res-1", "stud-1")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestListForStudent(t *testing.T) {
	t.Run("Owner Lists Own Reservations", func(t *testing.T) {
		repo := &fakeRepo{list: []*domain.Reservation{sampleReservation()}}
		svc := newService(repo)

		resp, err := svc.ListForStudent(context.Background(), "stud-1", "stud-1", false)
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 1)
		assert.Nil(t, repo.gotEndAfter, "full history must not pass a cutoff")
	})

	t.Run("Upcoming Passes A Cutoff", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newService(repo)

		before := time.Now()
		_, err := svc.ListForStudent(context.Background(), "stud-1", "stud-1", true)
		require.NoError(t, err)
		require.NotNil(t, repo.gotEndAfter)
		assert.False(t, repo.gotEndAfter.Before(before))
	})

	t.Run("Other Users Denied", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.ListForStudent(context.Background(), "stud-1", "stud-2", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Store Failure Degrades To Empty", func(t *testing.T) {
		svc := newService(&fakeRepo{listErr: errors.New("connection refused")})

		resp, err := svc.ListForStudent(context.Background(), "stud-1", "stud-1", false)
		require.NoError(t, err)
		assert.Empty(t, resp.Reservations)
	})
}

func TestListForProfessor(t *testing.T) {
	t.Run("Owner Lists Own Reservations", func(t *testing.T) {
		svc := newService(&fakeRepo{list: []*domain.Reservation{sampleReservation()}})

		resp, err := svc.ListForProfessor(context.Background(), "prof-1", "prof-1", false)
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 1)
	})

	t.Run("Other Users Denied", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.ListForProfessor(context.Background(), "prof-1", "stud-1", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestWatch(t *testing.T) {
	t.Run("Subscription Delivers Initial Snapshot", func(t *testing.T) {
		svc := newService(&fakeRepo{list: []*domain.Reservation{sampleReservation()}})

		sub, err := svc.WatchStudent(context.Background(), "stud-1", "stud-1", false)
		require.NoError(t, err)
		defer sub.Close()

		select {
		case snap := <-sub.Snapshots():
			require.Len(t, snap, 1)
			assert.Equal(t, "res-1", snap[0].ID)
		case <-time.After(2 * time.Second):
			t.Fatal("no initial snapshot")
		}
	})

	t.Run("Access Checked Before Subscribing", func(t *testing.T) {
		svc := newService(&fakeRepo{})

		_, err := svc.WatchStudent(context.Background(), "stud-1", "stud-2", false)
		assert.ErrorIs(t, err, ErrAccessDenied)

		_, err = svc.WatchProfessor(context.Background(), "prof-1", "stud-1", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
