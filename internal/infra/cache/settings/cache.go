package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

const keyPrefix = "user_settings:"

// Cache stores per-user display settings in Redis as JSON values.
// Settings are display-only state, so a cache is an acceptable home
// for them: losing a key just means falling back to defaults.
type Cache struct {
	client *redis.Client
}

// NewCache creates a settings cache on client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func key(userID string) string {
	return keyPrefix + userID
}

// Get fetches the user's settings.
func (c *Cache) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	data, err := c.client.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCacheGet, err)
	}

	var s domain.UserSettings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrEncode, err)
	}
	s.UserID = userID

	return &s, nil
}

// Set replaces the user's settings. No TTL: settings live until the
// next write.
func (c *Cache) Set(ctx context.Context, s *domain.UserSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrEncode, err)
	}

	if err := c.client.Set(ctx, key(s.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCacheSet, err)
	}
	return nil
}
