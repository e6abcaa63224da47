package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RequestsPerSecond() < 0 {
		return errors.New("server.rate_limit_rps must be >= 0")
	}
	if c.Server.StoreTimeout <= 0 {
		return errors.New("server.store_timeout must be positive")
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	return nil
}

func (db *DatabaseConfig) validate(prefix string) error {
	if db.URL == "" {
		if db.Host == "" {
			return fmt.Errorf("%s.host is required", prefix)
		}
		if db.Name == "" {
			return fmt.Errorf("%s.name is required", prefix)
		}
		if db.User == "" {
			return fmt.Errorf("%s.user is required", prefix)
		}
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
