package config

import "time"

// Config is the root configuration of the credential service
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RateLimitRPS    *int          `yaml:"rate_limit_rps"` // 0 disables, nil takes the default
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	StoreTimeout    time.Duration `yaml:"store_timeout"`
}

// RequestsPerSecond returns the per-client rate limit; 0 means unlimited
func (s ServerConfig) RequestsPerSecond() int {
	if s.RateLimitRPS == nil {
		return DefaultRateLimitRPS
	}
	return *s.RateLimitRPS
}

// DatabaseConfig holds PostgreSQL settings. URL, when set, wins over the
// individual connection fields.
type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxConns        int           `yaml:"max_conns"`
	MinConns        int           `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
}

// LogConfig controls logrus output
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}
