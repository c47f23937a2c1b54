package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	if c.Registry.Enabled() {
		if err := c.Registry.validate(); err != nil {
			return fmt.Errorf("registry: %w", err)
		}
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 (got %v)", c.Cache.TTL)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("telemetry.sample_ratio must be within [0, 1] (got %v)", c.Telemetry.SampleRatio)
	}

	if err := c.Invitation.validate(); err != nil {
		return fmt.Errorf("invitation: %w", err)
	}

	return nil
}

func (r *RegistryConfig) validate() error {
	u, err := url.Parse(r.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", r.BaseURL)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", r.Timeout)
	}
	return nil
}

func (i *InvitationConfig) validate() error {
	if i.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", i.DefaultPageSize)
	}
	if i.MaxPageSize < i.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", i.MaxPageSize, i.DefaultPageSize)
	}
	if i.MaxParticipants <= 0 {
		return fmt.Errorf("max_participants must be > 0 (got %d)", i.MaxParticipants)
	}
	return nil
}
