package config

// This file defines a Redis client constructor for the application.  Redis is
// used for rate limiting the auth endpoints and for caching room listings.
// Connection parameters come from environment variables.  If the server is
// unreachable at startup the constructor returns nil and callers degrade
// gracefully by disabling caching and rate limiting.

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables:
//
//	REDIS_ADDR     – host:port (default "localhost:6379")
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// The returned client may be nil if a connection cannot be established.
func NewRedisClient() *redis.Client {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	dbNum := 0
	if s := getenv("REDIS_DB", ""); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getenv("REDIS_PASSWORD", ""),
		DB:       dbNum,
	})
	// Ping with a short timeout; a dead Redis must not block startup.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
