package get_user_settings

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context, userID string) *domain.UserSettings
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
