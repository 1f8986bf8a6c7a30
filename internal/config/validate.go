package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.SMTP.validate(); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Notify.Concurrency <= 0 {
		return fmt.Errorf("notify.concurrency must be > 0 (got %d)", c.Notify.Concurrency)
	}
	if c.Notify.DispatchTimeout <= 0 {
		return errors.New("notify.dispatch_timeout must be > 0")
	}
	if c.RateLimit.SignPerMinute <= 0 || c.RateLimit.ViewPerMinute <= 0 {
		return errors.New("ratelimit: limits must be > 0")
	}

	return nil
}

func (s *SMTPConfig) validate() error {
	if !s.Enabled() {
		return nil
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port out of range (got %d)", s.Port)
	}
	if s.From == "" {
		return errors.New("from is required when host is set")
	}
	switch s.TLS {
	case "none", "opportunistic", "mandatory":
	default:
		return fmt.Errorf("tls must be none, opportunistic or mandatory (got %q)", s.TLS)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Endpoint == "" || s.Bucket == "" {
		return errors.New("endpoint and bucket are required when enabled")
	}
	if s.AccessKey == "" || s.SecretKey == "" {
		return errors.New("access_key and secret_key are required when enabled")
	}
	return nil
}
