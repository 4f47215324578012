package set_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tuj-devs/officehours-service/internal/api/handlers"
	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/service/availability"
	"github.com/tuj-devs/officehours-service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidWindow      = "invalid office hours window"
	msgAccessDenied       = "you can only edit your own office hours"
	msgProfessorNotFound  = "professor not found"
	msgProfessorRequired  = "professor role required"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professors/{professorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID := mux.Vars(r)["professorId"]

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if identity.Role != domain.RoleProfessor {
		handlers.RespondForbidden(w, msgProfessorRequired)
		return
	}

	var req models.SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professors/%s/availability - Invalid request body: %v", professorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Set(r.Context(), identity.UserID, professorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, availability.ErrInvalidWindow):
			h.logger.Warn("PUT /professors/%s/availability - Invalid window: %v", professorID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)
		case errors.Is(err, availability.ErrProfessorNotFound):
			handlers.RespondNotFound(w, msgProfessorNotFound)
		default:
			h.logger.Error("PUT /professors/%s/availability - Service error: %v", professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
