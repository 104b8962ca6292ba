package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis using the given address and password.
// It returns nil when the server cannot be reached; callers must treat a
// nil client as "caching disabled" and degrade gracefully.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
