package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultPort            = 3030
	DefaultRateLimitRPS    = 100
	DefaultShutdownTimeout = 5 * time.Second
	DefaultStoreTimeout    = 5 * time.Second
	DefaultDBHost          = "localhost"
	DefaultDBPort          = 5432
	DefaultDBName          = "test"
	DefaultDBUser          = "postgres"
	DefaultDBSSLMode       = "prefer"
	DefaultMaxConns        = 5
	DefaultMinConns        = 1
	DefaultMaxConnLifetime = 1 * time.Hour
	DefaultMaxConnIdleTime = 30 * time.Minute
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
)

// Default returns a configuration usable without any config file
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.RateLimitRPS == nil {
		rps := DefaultRateLimitRPS
		c.Server.RateLimitRPS = &rps
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.StoreTimeout == 0 {
		c.Server.StoreTimeout = DefaultStoreTimeout
	}

	db := &c.Database
	if db.URL == "" {
		if db.Host == "" {
			db.Host = DefaultDBHost
		}
		if db.Name == "" {
			db.Name = DefaultDBName
		}
		if db.User == "" {
			db.User = DefaultDBUser
		}
	}
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
	if db.MaxConnLifetime == 0 {
		db.MaxConnLifetime = DefaultMaxConnLifetime
	}
	if db.MaxConnIdleTime == 0 {
		db.MaxConnIdleTime = DefaultMaxConnIdleTime
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
