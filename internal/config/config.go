// SPDX-License-Identifier: MIT

// Package config loads and validates the staffd configuration. Values are
// layered: built-in defaults, then the optional YAML file, then environment
// variables. Environment always wins.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full staffd configuration.
type Config struct {
	Listen   string `yaml:"listen" env:"STAFFD_LISTEN"`
	LogLevel string `yaml:"log_level" env:"STAFFD_LOG_LEVEL"`

	Server    Server    `yaml:"server"`
	Storage   Storage   `yaml:"storage"`
	Redis     Redis     `yaml:"redis"`
	RateLimit RateLimit `yaml:"rate_limit"`

	ShutdownTimeout Duration `yaml:"shutdown_timeout" env:"STAFFD_SHUTDOWN_TIMEOUT"`
}

// Server bounds connection handling on the HTTP listener.
type Server struct {
	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	ReadTimeout Duration `yaml:"read_timeout" env:"STAFFD_SERVER_READ_TIMEOUT"`
	// ReadHeaderTimeout is the maximum duration for reading request headers.
	ReadHeaderTimeout Duration `yaml:"read_header_timeout" env:"STAFFD_SERVER_READ_HEADER_TIMEOUT"`
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout Duration `yaml:"write_timeout" env:"STAFFD_SERVER_WRITE_TIMEOUT"`
	// IdleTimeout is the maximum amount of time to wait for the next request
	// on a kept-alive connection.
	IdleTimeout Duration `yaml:"idle_timeout" env:"STAFFD_SERVER_IDLE_TIMEOUT"`
	// MaxHeaderBytes caps the bytes the server reads parsing request headers.
	MaxHeaderBytes int `yaml:"max_header_bytes" env:"STAFFD_SERVER_MAX_HEADER_BYTES"`
}

// Storage selects the persistence backend.
type Storage struct {
	Backend string `yaml:"backend" env:"STAFFD_STORAGE_BACKEND"`
	Path    string `yaml:"path" env:"STAFFD_STORAGE_PATH"`
}

// Redis configures the optional read-through cache.
type Redis struct {
	Enabled  bool     `yaml:"enabled" env:"STAFFD_REDIS_ENABLED"`
	Addr     string   `yaml:"addr" env:"STAFFD_REDIS_ADDR"`
	Password string   `yaml:"password" env:"STAFFD_REDIS_PASSWORD"`
	DB       int      `yaml:"db" env:"STAFFD_REDIS_DB"`
	TTL      Duration `yaml:"ttl" env:"STAFFD_REDIS_TTL"`
}

// RateLimit configures per-IP request limiting at the API edge.
type RateLimit struct {
	Enabled           bool `yaml:"enabled" env:"STAFFD_RATELIMIT_ENABLED"`
	RequestsPerMinute int  `yaml:"requests_per_minute" env:"STAFFD_RATELIMIT_RPM"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Server: Server{
			ReadTimeout:       Duration(30 * time.Second),
			ReadHeaderTimeout: Duration(10 * time.Second),
			WriteTimeout:      Duration(30 * time.Second),
			IdleTimeout:       Duration(120 * time.Second),
			MaxHeaderBytes:    1 << 20, // 1 MB
		},
		Storage: Storage{
			Backend: "memory",
		},
		Redis: Redis{
			Addr: "localhost:6379",
			TTL:  Duration(5 * time.Minute),
		},
		RateLimit: RateLimit{
			Enabled:           true,
			RequestsPerMinute: 120,
		},
		ShutdownTimeout: Duration(10 * time.Second),
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (if path is non-empty), then environment overrides. The result is
// validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty or comment-only file decodes to io.EOF; treat it as "all defaults".
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validBackends = map[string]bool{
	"memory": true,
	"file":   true,
	"badger": true,
	"sqlite": true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address is required")
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.ReadHeaderTimeout <= 0 ||
		c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("config: server timeouts must be positive")
	}
	if c.Server.MaxHeaderBytes <= 0 {
		return fmt.Errorf("config: server max_header_bytes must be positive")
	}
	if !validBackends[c.Storage.Backend] {
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("config: storage backend %q requires a path", c.Storage.Backend)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis is enabled but no address is set")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("config: rate limit requires requests_per_minute > 0")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown timeout must be positive")
	}
	return nil
}
