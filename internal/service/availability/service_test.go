package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuj-devs/officehours-service/internal/domain"
	availabilityRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/availability"
	professorRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/professor"
	"github.com/tuj-devs/officehours-service/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	stored *domain.AvailabilityWindow
	getErr error
	upsErr error
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	if f.upsErr != nil {
		return nil, f.upsErr
	}
	f.stored = w
	return w, nil
}

func (f *fakeAvailabilityRepo) GetByProfessor(_ context.Context, _ string) (*domain.AvailabilityWindow, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

type fakeProfessorRepo struct {
	err error
}

func (f *fakeProfessorRepo) GetByID(_ context.Context, id string) (*domain.Professor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Professor{ID: id, Name: "Prof. Sato"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validSetRequest() *models.SetAvailabilityRequest {
	return &models.SetAvailabilityRequest{
		DaysOfWeek:          []string{"Wednesday", "Monday"},
		StartTime:           "09:00",
		EndTime:             "12:00",
		SlotDurationMinutes: 15,
		Location:            "Room 204",
		Timezone:            "Asia/Tokyo",
	}
}

func TestSet(t *testing.T) {
	t.Run("Stores Normalized Window", func(t *testing.T) {
		repo := &fakeAvailabilityRepo{}
		svc := NewService(repo, &fakeProfessorRepo{}, nopLogger{})

		resp, err := svc.Set(context.Background(), "prof-1", "prof-1", validSetRequest())
		require.NoError(t, err)

		assert.Equal(t, []string{"Monday", "Wednesday"}, resp.DaysOfWeek)
		assert.Equal(t, "09:00", resp.StartTime)
		require.NotNil(t, repo.stored)
		assert.Equal(t, "prof-1", repo.stored.ProfessorID)
	})

	t.Run("Empty Timezone Defaults", func(t *testing.T) {
		repo := &fakeAvailabilityRepo{}
		svc := NewService(repo, &fakeProfessorRepo{}, nopLogger{})

		req := validSetRequest()
		req.Timezone = ""
		resp, err := svc.Set(context.Background(), "prof-1", "prof-1", req)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultTimezone, resp.Timezone)
	})

	t.Run("Other Users Denied", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{}, &fakeProfessorRepo{}, nopLogger{})

		_, err := svc.Set(context.Background(), "stud-1", "prof-1", validSetRequest())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Invalid Window Rejected Wholesale", func(t *testing.T) {
		repo := &fakeAvailabilityRepo{}
		svc := NewService(repo, &fakeProfessorRepo{}, nopLogger{})

		for _, mutate := range []func(*models.SetAvailabilityRequest){
			func(r *models.SetAvailabilityRequest) { r.DaysOfWeek = nil },
			func(r *models.SetAvailabilityRequest) { r.StartTime = "12:00" },
			func(r *models.SetAvailabilityRequest) { r.EndTime = "soon" },
			func(r *models.SetAvailabilityRequest) { r.SlotDurationMinutes = 0 },
			func(r *models.SetAvailabilityRequest) { r.Timezone = "Mars/Olympus_Mons" },
		} {
			req := validSetRequest()
			mutate(req)
			_, err := svc.Set(context.Background(), "prof-1", "prof-1", req)
			assert.ErrorIs(t, err, ErrInvalidWindow)
			assert.Nil(t, repo.stored, "a rejected window must not be partially applied")
		}
	})

	t.Run("Unknown Professor", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{}, &fakeProfessorRepo{err: professorRepo.ErrProfessorNotFound}, nopLogger{})

		_, err := svc.Set(context.Background(), "prof-1", "prof-1", validSetRequest())
		assert.ErrorIs(t, err, ErrProfessorNotFound)
	})
}

func TestGet(t *testing.T) {
	t.Run("Returns Stored Window", func(t *testing.T) {
		repo := &fakeAvailabilityRepo{stored: &domain.AvailabilityWindow{
			ProfessorID: "prof-1",
			DaysOfWeek:  []string{"Monday"},
			StartTime:   "09:00",
			EndTime:     "12:00",
			Timezone:    "Asia/Tokyo",
		}}
		svc := NewService(repo, &fakeProfessorRepo{}, nopLogger{})

		resp, err := svc.Get(context.Background(), "prof-1")
		require.NoError(t, err)
		assert.Equal(t, "prof-1", resp.ProfessorID)
	})

	t.Run("Not Configured", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{getErr: availabilityRepo.ErrWindowNotFound}, &fakeProfessorRepo{}, nopLogger{})

		_, err := svc.Get(context.Background(), "prof-1")
		assert.ErrorIs(t, err, ErrAvailabilityNotSet)
	})

	t.Run("Store Failure Surfaces", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{getErr: errors.New("connection refused")}, &fakeProfessorRepo{}, nopLogger{})

		_, err := svc.Get(context.Background(), "prof-1")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
