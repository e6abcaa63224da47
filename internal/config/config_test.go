package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	yaml := `
server:
  port: 8081
  store_timeout: 2s
database:
  host: db.internal
  name: credentials
  user: svc
  password: ${TEST_DB_PASSWORD}
log:
  format: text
`
	t.Setenv("TEST_DB_PASSWORD", "secret123")
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.StoreTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret123", cfg.Database.Password)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadAndValidateDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadAndValidate("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultStoreTimeout, cfg.Server.StoreTimeout)
	assert.Equal(t, DefaultDBHost, cfg.Database.Host)
	assert.Equal(t, DefaultDBPort, cfg.Database.Port)
	assert.Equal(t, DefaultMaxConns, cfg.Database.MaxConns)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultRateLimitRPS, cfg.Server.RequestsPerSecond())
}

func TestLoadAndValidateRateLimit(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	tests := []struct {
		name    string
		yaml    string
		want    int
		wantErr string
	}{
		{
			name: "absent takes the default",
			yaml: "server:\n  port: 8080\n",
			want: DefaultRateLimitRPS,
		},
		{
			name: "explicit zero disables",
			yaml: "server:\n  rate_limit_rps: 0\n",
			want: 0,
		},
		{
			name: "explicit value is kept",
			yaml: "server:\n  rate_limit_rps: 25\n",
			want: 25,
		},
		{
			name:    "negative is rejected",
			yaml:    "server:\n  rate_limit_rps: -1\n",
			wantErr: "server.rate_limit_rps must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAndValidate(writeTempFile(t, tt.yaml))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg.Server.RateLimitRPS)
			assert.Equal(t, tt.want, cfg.Server.RequestsPerSecond())
		})
	}
}

func TestLoadAndValidateEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@example:5432/creds")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadAndValidate("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@example:5432/creds", cfg.Database.URL)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Database.Host, "host defaults are skipped when a URL is given")
}

func TestLoadAndValidateBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := LoadAndValidate("")
	assert.ErrorContains(t, err, "invalid PORT")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return Default() }

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port must be between 1 and 65535, got 70000",
		},
		{
			name:    "missing host without url",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "database.host is required",
		},
		{
			name: "url makes host optional",
			mutate: func(c *Config) {
				c.Database.Host = ""
				c.Database.URL = "postgres://localhost/test"
			},
		},
		{
			name: "min_conns exceeds max_conns",
			mutate: func(c *Config) {
				c.Database.MaxConns = 2
				c.Database.MinConns = 4
			},
			wantErr: "database.min_conns (4) cannot exceed max_conns (2)",
		},
		{
			name:   "zero rate limit is valid",
			mutate: func(c *Config) { c.Server.RateLimitRPS = intPtr(0) },
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *Config) { c.Server.RateLimitRPS = intPtr(-5) },
			wantErr: "server.rate_limit_rps must be >= 0",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: `log.format must be json or text, got "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func intPtr(v int) *int { return &v }

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
