package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	settingsCache "github.com/tuj-devs/officehours-service/internal/infra/cache/settings"
	"github.com/tuj-devs/officehours-service/internal/service/settings/models"
)

// Service manages per-user display settings. Settings only shape how
// instants are rendered; they never shift which slot gets booked.
type Service struct {
	cache  SettingsCache
	logger Logger
}

func NewService(cache SettingsCache, logger Logger) *Service {
	return &Service{
		cache:  cache,
		logger: logger,
	}
}

// Get returns the user's settings, falling back to defaults on a miss
// or an unreachable cache. A read here never fails the caller.
func (s *Service) Get(ctx context.Context, userID string) *domain.UserSettings {
	stored, err := s.cache.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, settingsCache.ErrSettingsNotFound) {
			s.logger.Warn("Get: settings cache unavailable for user=%s, using defaults: %v", userID, err)
		}
		return defaultSettings(userID)
	}
	return stored
}

// Update replaces the user's settings. Users can only update their own.
func (s *Service) Update(ctx context.Context, requesterID, userID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if requesterID != userID {
		s.logger.Warn("Update: user=%s attempted to update settings of user=%s", requesterID, userID)
		return nil, ErrAccessDenied
	}

	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.Timezone)
	}

	settings := &domain.UserSettings{
		UserID:   userID,
		Timezone: req.Timezone,
		Is24Hour: req.Is24Hour,
	}

	if err := s.cache.Set(ctx, settings); err != nil {
		s.logger.Error("Update: failed to store settings for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - cache error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: stored settings for user=%s, timezone=%s, 24h=%t", userID, req.Timezone, req.Is24Hour)
	return models.FromDomainSettings(settings), nil
}

func defaultSettings(userID string) *domain.UserSettings {
	return &domain.UserSettings{
		UserID:   userID,
		Timezone: domain.DefaultTimezone,
		Is24Hour: false,
	}
}
