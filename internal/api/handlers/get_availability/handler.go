package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tuj-devs/officehours-service/internal/api/handlers"
	"github.com/tuj-devs/officehours-service/internal/service/availability"
)

const msgAvailabilityNotSet = "professor has no office hours configured"

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

// Handle GET /api/v1/professors/{professorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID := mux.Vars(r)["professorId"]

	result, err := h.service.Get(r.Context(), professorID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotSet):
			handlers.RespondNotFound(w, msgAvailabilityNotSet)
		default:
			h.logger.Error("GET /professors/%s/availability - Service error: %v", professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
