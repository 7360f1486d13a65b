// Package cache provides the Redis connection used by key-value backed modules.
// This is part of the platform layer and contains no business logic.
package cache

import (
	"context"
	"fmt"
	"time"

	"givehope_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient parses REDIS_URL and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.IsRedisEnabled() {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
