package get_student_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tuj-devs/officehours-service/internal/api/handlers"
	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/service/reservations"
)

const msgAccessDenied = "you can only view your own reservations"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}/reservations?upcoming=true&watch=true
//
// Without watch this is a plain list. With watch=true the response is
// a server-sent event stream where every event is the full current
// list, re-sent whenever a booking lands.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	upcoming := r.URL.Query().Get("upcoming") == "true"

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if r.URL.Query().Get("watch") == "true" {
		h.handleWatch(w, r, studentID, identity.UserID, upcoming)
		return
	}

	result, err := h.service.ListForStudent(r.Context(), studentID, identity.UserID, upcoming)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /students/%s/reservations - Service error: %v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request, studentID, requesterID string, upcoming bool) {
	sub, err := h.service.WatchStudent(r.Context(), studentID, requesterID, upcoming)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /students/%s/reservations (watch) - Subscribe error: %v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	defer sub.Close()

	h.logger.Info("GET /students/%s/reservations (watch) - Stream opened for user=%s", studentID, requesterID)
	handlers.StreamSnapshots(w, r, sub, func(snap []*domain.Reservation) interface{} {
		return h.service.RenderList(r.Context(), requesterID, snap)
	})
	h.logger.Info("GET /students/%s/reservations (watch) - Stream closed for user=%s", studentID, requesterID)
}
