package config

import "time"

// RateLimitConfig controls the Redis token bucket applied to the auth
// endpoints.  Capacity is the burst size; one token is refilled every
// RefillInterval.  TTL bounds how long idle bucket state lives in Redis.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadRateLimitConfig reads environment variables to build a RateLimitConfig
// with sane defaults.  The TTL is clamped so bucket state always outlives a
// few refill intervals.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       getenvInt("RATE_LIMIT_CAPACITY", 20),
		RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_EVERY", "1s"), time.Second),
		TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m"), 10*time.Minute),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
