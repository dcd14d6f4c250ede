package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sportivaid/arena-booking/internal/config"
)

// NewRedisClient returns nil when the server cannot be reached at
// startup; callers degrade gracefully by running without the cache.
func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
