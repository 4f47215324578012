package settings

import (
	"context"
	"sync"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// MemoryCache is a process-local fallback used when Redis is disabled.
// Settings stored here do not survive a restart and are not shared
// between instances.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]domain.UserSettings
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]domain.UserSettings),
	}
}

func (c *MemoryCache) Get(_ context.Context, userID string) (*domain.UserSettings, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.items[userID]
	if !ok {
		return nil, ErrSettingsNotFound
	}
	out := s
	return &out, nil
}

func (c *MemoryCache) Set(_ context.Context, s *domain.UserSettings) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[s.UserID] = *s
	return nil
}
