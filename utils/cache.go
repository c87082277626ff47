package utils

import (
	"context"
	"log"
	"time"

	"speakerhub/config"

	"github.com/go-redis/redis/v8"
)

var (
	// StagedCacheClient holds staged signup data.
	StagedCacheClient *redis.Client
	// EventsClient carries cross-instance avatar update events.
	EventsClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// GetStagedCacheClient returns the Redis client for staged signup data.
func GetStagedCacheClient() *redis.Client {
	if StagedCacheClient == nil {
		StagedCacheClient = newRedisClient(config.AppConfig.RedisStagedDB, "Staged")
	}
	return StagedCacheClient
}

// GetEventsClient returns the Redis client used for pub/sub.
func GetEventsClient() *redis.Client {
	if EventsClient == nil {
		EventsClient = newRedisClient(config.AppConfig.RedisEventsDB, "Events")
	}
	return EventsClient
}
