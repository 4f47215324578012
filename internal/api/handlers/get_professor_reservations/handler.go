package get_professor_reservations

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

// Handle GET /api/v1/professors/{professorId}/reservations?upcoming=true&watch=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID := mux.Vars(r)["professorId"]
	upcoming := r.URL.Query().Get("upcoming") == "true"

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if r.URL.Query().Get("watch") == "true" {
		h.handleWatch(w, r, professorID, identity.UserID, upcoming)
		return
	}

	result, err := h.service.ListForProfessor(r.Context(), professorID, identity.UserID, upcoming)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /professors/%s/reservations - Service error: %v", professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request, professorID, requesterID string, upcoming bool) {
	sub, err := h.service.WatchProfessor(r.Context(), professorID, requesterID, upcoming)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /professors/%s/reservations (watch) - Subscribe error: %v", professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	defer sub.Close()

	h.logger.Info("GET /professors/%s/reservations (watch) - Stream opened for user=%s", professorID, requesterID)
	handlers.StreamSnapshots(w, r, sub, func(snap []*domain.Reservation) interface{} {
		return h.service.RenderList(r.Context(), requesterID, snap)
	})
	h.logger.Info("GET /professors/%s/reservations (watch) - Stream closed for user=%s", professorID, requesterID)
}
