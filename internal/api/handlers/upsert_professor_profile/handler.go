package upsert_professor_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tuj-devs/officehours-service/internal/api/handlers"
	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/service/professors"
	"github.com/tuj-devs/officehours-service/internal/service/professors/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidProfile     = "invalid profile data"
	msgAccessDenied       = "you can only edit your own profile"
	msgProfessorRequired  = "professor role required"
)

type Handler struct {
	service ProfessorService
	logger  Logger
}

func NewHandler(service ProfessorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professors/{professorId}/profile
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

	var req models.UpsertProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professors/%s/profile - Invalid request body: %v", professorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertProfile(r.Context(), identity.UserID, professorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, professors.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, professors.ErrInvalidInput):
			h.logger.Warn("PUT /professors/%s/profile - Invalid profile: %v", professorID, err)
			handlers.RespondBadRequest(w, msgInvalidProfile)
		default:
			h.logger.Error("PUT /professors/%s/profile - Service error: %v", professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
