package settings

import (
	"context"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// SettingsCache is the storage surface for per-user display settings.
type SettingsCache interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Set(ctx context.Context, s *domain.UserSettings) error
}

// Logger is the logging interface for the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
