// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout.Std())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout.Std())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout.Std())
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout.Std())
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout.Std())
	assert.Equal(t, 1<<20, cfg.Server.MaxHeaderBytes)
}

func TestLoad_ServerSection(t *testing.T) {
	path := writeConfig(t, `
server:
  read_timeout: 15s
  idle_timeout: 1m
`)
	t.Setenv("STAFFD_SERVER_WRITE_TIMEOUT", "20s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout.Std())
	assert.Equal(t, time.Minute, cfg.Server.IdleTimeout.Std())
	assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout.Std())
	// Untouched fields keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout.Std())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
log_level: debug
storage:
  backend: sqlite
  path: /tmp/staff.db
shutdown_timeout: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/staff.db", cfg.Storage.Path)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout.Std())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
log_level: debug
`)
	t.Setenv("STAFFD_LISTEN", ":7070")
	t.Setenv("STAFFD_LOG_LEVEL", "warn")
	t.Setenv("STAFFD_REDIS_TTL", "90s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Listen)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL.Std())
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, "listne: \":9090\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty listen", func(c *Config) { c.Listen = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad backend", func(c *Config) { c.Storage.Backend = "cassandra" }, true},
		{"file backend without path", func(c *Config) { c.Storage.Backend = "file" }, true},
		{"file backend with path", func(c *Config) { c.Storage.Backend = "file"; c.Storage.Path = "/tmp/x" }, false},
		{"redis enabled without addr", func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" }, true},
		{"rate limit without rpm", func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, true},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, true},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, true},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeout = Duration(-time.Second) }, true},
		{"zero max header bytes", func(c *Config) { c.Server.MaxHeaderBytes = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDuration_YAML(t *testing.T) {
	path := writeConfig(t, "shutdown_timeout: 1m30s\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.ShutdownTimeout.Std())
}

func TestDuration_BadValue(t *testing.T) {
	path := writeConfig(t, "shutdown_timeout: soon\n")
	_, err := Load(path)
	assert.Error(t, err)
}
