package get_user_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tuj-devs/officehours-service/internal/api/handlers"
	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	"github.com/tuj-devs/officehours-service/internal/service/settings/models"
)

const msgAccessDenied = "you can only view your own settings"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/settings
//
// Always succeeds for the owner: users without stored settings get the
// defaults back.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if identity.UserID != userID {
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	settings := h.service.Get(r.Context(), userID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSettings(settings))
}
