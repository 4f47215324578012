package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuj-devs/officehours-service/internal/domain"
	settingsCache "github.com/tuj-devs/officehours-service/internal/infra/cache/settings"
	"github.com/tuj-devs/officehours-service/internal/service/settings/models"
)

type fakeCache struct {
	stored *domain.UserSettings
	getErr error
	setErr error
}

func (f *fakeCache) Get(_ context.Context, _ string) (*domain.UserSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeCache) Set(_ context.Context, s *domain.UserSettings) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = s
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet(t *testing.T) {
	t.Run("Returns Stored Settings", func(t *testing.T) {
		svc := NewService(&fakeCache{stored: &domain.UserSettings{UserID: "u1", Timezone: "America/New_York", Is24Hour: true}}, nopLogger{})

		s := svc.Get(context.Background(), "u1")
		assert.Equal(t, "America/New_York", s.Timezone)
		assert.True(t, s.Is24Hour)
	})

	t.Run("Miss Falls Back To Defaults", func(t *testing.T) {
		svc := NewService(&fakeCache{getErr: settingsCache.ErrSettingsNotFound}, nopLogger{})

		s := svc.Get(context.Background(), "u1")
		assert.Equal(t, domain.DefaultTimezone, s.Timezone)
		assert.False(t, s.Is24Hour)
	})

	t.Run("Unreachable Cache Falls Back To Defaults", func(t *testing.T) {
		svc := NewService(&fakeCache{getErr: errors.New("connection refused")}, nopLogger{})

		s := svc.Get(context.Background(), "u1")
		assert.Equal(t, domain.DefaultTimezone, s.Timezone)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Stores Settings", func(t *testing.T) {
		cache := &fakeCache{}
		svc := NewService(cache, nopLogger{})

		resp, err := svc.Update(context.Background(), "u1", "u1", &models.UpdateSettingsRequest{
			Timezone: "Europe/Berlin",
			Is24Hour: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", resp.Timezone)
		require.NotNil(t, cache.stored)
		assert.Equal(t, "u1", cache.stored.UserID)
	})

	t.Run("Other Users Denied", func(t *testing.T) {
		svc := NewService(&fakeCache{}, nopLogger{})

		_, err := svc.Update(context.Background(), "u2", "u1", &models.UpdateSettingsRequest{Timezone: "UTC"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Unknown Timezone Rejected", func(t *testing.T) {
		svc := NewService(&fakeCache{}, nopLogger{})

		_, err := svc.Update(context.Background(), "u1", "u1", &models.UpdateSettingsRequest{Timezone: "Mars/Olympus_Mons"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Cache Failure Surfaces", func(t *testing.T) {
		svc := NewService(&fakeCache{setErr: errors.New("connection refused")}, nopLogger{})

		_, err := svc.Update(context.Background(), "u1", "u1", &models.UpdateSettingsRequest{Timezone: "UTC"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := settingsCache.NewMemoryCache()

	_, err := cache.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, settingsCache.ErrSettingsNotFound)

	require.NoError(t, cache.Set(context.Background(), &domain.UserSettings{UserID: "u1", Timezone: "UTC"}))

	s, err := cache.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "UTC", s.Timezone)
}
