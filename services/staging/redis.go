package staging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const stagedPrefix = "staged:"

// RedisStore keeps staged data in Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. A zero ttl keeps entries until deleted.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func stagedKey(deviceID, key string) string {
	return stagedPrefix + deviceID + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, deviceID, key string) (string, error) {
	data, err := s.client.Get(ctx, stagedKey(deviceID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read staged %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, deviceID, key, value string) error {
	if err := s.client.Set(ctx, stagedKey(deviceID, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to stage %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, deviceID, key string) error {
	if err := s.client.Del(ctx, stagedKey(deviceID, key)).Err(); err != nil {
		return fmt.Errorf("failed to clear staged %s: %w", key, err)
	}
	return nil
}
