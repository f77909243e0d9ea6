package config

import (
	"os"
	"time"
)

// CacheConfig defines settings for the seating-map cache.  When Enabled is
// false or no Redis client is configured, caching is disabled and maps are
// projected from the seat grid on every request.  TTL bounds staleness for
// readers that race a booking confirmation; confirmations also invalidate
// the affected movie's entry explicitly.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("SEATMAP_CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("SEATMAP_CACHE_TTL", "30s")),
		Prefix:  getenv("SEATMAP_CACHE_PREFIX", "seatmap"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
