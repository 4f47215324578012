package create_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	"github.com/tuj-devs/officehours-service/internal/domain"
	createReservation "github.com/tuj-devs/officehours-service/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	got  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if authed {
		req.Header.Set("X-User-ID", "stud-1")
		req.Header.Set("X-User-Name", "Aiko Tanaka")
		req.Header.Set("X-User-Role", "student")
	}
	rec := httptest.NewRecorder()
	middleware.Auth(nopLogger{})(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestCreateReservationHandler(t *testing.T) {
	validBody := `{"professorId":"prof-1","date":"2026-04-06","startTime":"09:15","note":"thesis draft"}`

	t.Run("Creates Reservation", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createReservation.Response{
			Reservation: &domain.Reservation{
				ID:          "res-1",
				ProfessorID: "prof-1",
				StudentID:   "stud-1",
				StartAt:     time.Date(2026, 4, 6, 0, 15, 0, 0, time.UTC),
				EndAt:       time.Date(2026, 4, 6, 0, 30, 0, 0, time.UTC),
			},
		}}

		rec := doRequest(t, uc, validBody, true)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"res-1"`)

		// Identity comes from headers, the slot from the body.
		require.NotNil(t, uc.got)
		assert.Equal(t, "stud-1", uc.got.StudentID)
		assert.Equal(t, "Aiko Tanaka", uc.got.StudentName)
		assert.Equal(t, "09:15", uc.got.StartTime.String())
		require.NotNil(t, uc.got.Note)
		assert.Equal(t, "thesis draft", *uc.got.Note)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, validBody, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `{"professorId":`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Bad Date", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `{"professorId":"prof-1","date":"06.04.2026","startTime":"09:15"}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error Mapping", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{createReservation.ErrSlotNoLongerAvailable, http.StatusConflict},
			{createReservation.ErrProfessorNotFound, http.StatusNotFound},
			{createReservation.ErrAvailabilityNotSet, http.StatusNotFound},
			{createReservation.ErrProfessorUnavailable, http.StatusBadRequest},
			{createReservation.ErrInvalidSlot, http.StatusBadRequest},
			{createReservation.ErrInvalidInput, http.StatusBadRequest},
			{createReservation.ErrInternal, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			rec := doRequest(t, &fakeUseCase{err: tc.err}, validBody, true)
			assert.Equal(t, tc.status, rec.Code, "error=%v", tc.err)
		}
	})
}
