package update_user_settings

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, requesterID, userID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
