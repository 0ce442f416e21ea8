package config

import "time"

// CacheConfig defines settings for the response cache middleware that fronts
// the room catalog.  When Enabled is false or no Redis client is available,
// caching is disabled entirely.  Only GET responses are ever cached; the TTL
// controls how long a cached listing survives, and MaxBodyBytes caps the size
// of responses worth storing.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "60s"), 60*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: getenvInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
