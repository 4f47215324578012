package create_reservation

import (
	"errors"
	"net/http"

	"github.com/tuj-devs/officehours-service/internal/api/handlers"
	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	createReservation "github.com/tuj-devs/officehours-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDateOrTime     = "invalid date or start time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput          = "invalid reservation data"
	msgProfessorNotFound     = "professor not found"
	msgAvailabilityNotSet    = "professor has no office hours configured"
	msgProfessorUnavailable  = "professor has no office hours on this day"
	msgInvalidSlot           = "start time does not match an offered slot"
	msgSlotNoLongerAvailable = "slot is no longer available"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /reservations - Slot taken: professor_id=%s, student_id=%s", req.ProfessorID, identity.UserID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNoLongerAvailable)

		case errors.Is(err, createReservation.ErrProfessorNotFound):
			handlers.RespondNotFound(w, msgProfessorNotFound)

		case errors.Is(err, createReservation.ErrAvailabilityNotSet):
			handlers.RespondNotFound(w, msgAvailabilityNotSet)

		case errors.Is(err, createReservation.ErrProfessorUnavailable):
			handlers.RespondBadRequest(w, msgProfessorUnavailable)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Use case error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomainReservation(result.Reservation))
}
