// Package cache provides Redis-backed implementations of application adapters.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/inventory-tracker/backend/internal/application/adapter"
)

const settingsKeyPrefix = "inventory:settings:"

// redisSettingsStore implements the adapter.SettingsStore interface on Redis strings.
type redisSettingsStore struct {
	client *redis.Client
}

// NewRedisSettingsStore creates a settings store that keeps every key under settingsKeyPrefix.
func NewRedisSettingsStore(client *redis.Client) adapter.SettingsStore {
	return &redisSettingsStore{client: client}
}

func (s *redisSettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, settingsKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

func (s *redisSettingsStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, settingsKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (s *redisSettingsStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, settingsKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}
