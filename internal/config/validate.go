package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Itinerary.validate(); err != nil {
		return fmt.Errorf("itinerary: %w", err)
	}

	if c.Redis.Enabled && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("ratelimit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("ratelimit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
		}
	}

	if u, err := url.Parse(c.Export.ShareBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("export.share_base_url must be an absolute URL (got %q)", c.Export.ShareBaseURL)
	}

	return nil
}

func (i *ItineraryConfig) validate() error {
	if i.MaxItinerariesPerOwner <= 0 {
		return fmt.Errorf("max_itineraries_per_owner must be > 0 (got %d)", i.MaxItinerariesPerOwner)
	}
	if i.MaxItemsPerItinerary <= 0 {
		return fmt.Errorf("max_items_per_itinerary must be > 0 (got %d)", i.MaxItemsPerItinerary)
	}
	return nil
}
