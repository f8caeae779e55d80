package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, 9100, cfg.AdminPort)
	assert.Equal(t, 0, cfg.GRPCPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.ShutdownTimeout)

	assert.Equal(t, ":3000", cfg.GetHTTPAddr())
	assert.True(t, cfg.AdminEnabled())
	assert.False(t, cfg.GRPCEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AWESOMENESS_HTTP_PORT", "8080")
	t.Setenv("AWESOMENESS_ADMIN_PORT", "0")
	t.Setenv("AWESOMENESS_GRPC_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TIMEOUT_SHUTDOWN", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.False(t, cfg.AdminEnabled())
	assert.True(t, cfg.GRPCEnabled())
	assert.Equal(t, ":9090", cfg.GetGRPCAddr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Timeouts.ShutdownTimeout)
}

func TestLoadRejectsUnparsableValue(t *testing.T) {
	t.Setenv("AWESOMENESS_HTTP_PORT", "three-thousand")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:  3000,
			AdminPort: 9100,
			LogLevel:  "info",
			LogFormat: "json",
			Timeouts: TimeoutConfig{
				ReadHeaderTimeout: time.Second,
				ShutdownTimeout:   time.Second,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "admin disabled", mutate: func(c *Config) { c.AdminPort = 0 }},
		{name: "http port zero", mutate: func(c *Config) { c.HTTPPort = 0 }, wantErr: "invalid HTTP port"},
		{name: "http port too large", mutate: func(c *Config) { c.HTTPPort = 70000 }, wantErr: "invalid HTTP port"},
		{name: "negative admin port", mutate: func(c *Config) { c.AdminPort = -1 }, wantErr: "invalid admin port"},
		{name: "admin collides", mutate: func(c *Config) { c.AdminPort = 3000 }, wantErr: "collides with HTTP port"},
		{name: "grpc collides", mutate: func(c *Config) { c.GRPCPort = 9100 }, wantErr: "collides with another listener"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "invalid log format"},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.Timeouts.ShutdownTimeout = 0 }, wantErr: "shutdown timeout"},
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
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
