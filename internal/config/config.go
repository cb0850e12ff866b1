// Package config reads the service configuration from the environment
// (optionally seeded from a .env file) and the optional YAML settings file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config is the process configuration.
type Config struct {
	Port       int
	UploadDir  string
	OutputDir  string
	MaxUpload  int64
	SessionTTL time.Duration
	LogLevel   slog.Level
	Settings   *Settings
}

const (
	defaultPort       = 8080
	defaultMaxMB      = 25
	defaultSessionTTL = 5 * time.Minute
)

// FromEnv builds a Config from PORT, UPLOAD_DIR, OUTPUT_DIR, MAX_UPLOAD_MB,
// SESSION_TTL, LOG_LEVEL and SETTINGS_FILE.
func FromEnv() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:       defaultPort,
		UploadDir:  "uploads",
		OutputDir:  "output",
		MaxUpload:  defaultMaxMB << 20,
		SessionTTL: defaultSessionTTL,
		LogLevel:   slog.LevelInfo,
		Settings:   &Settings{},
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	if v := getenv("UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil || mb <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_MB %q", v)
		}
		cfg.MaxUpload = mb << 20
	}
	if v := getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL %q", v)
		}
		cfg.SessionTTL = ttl
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}
	if path := getenv("SETTINGS_FILE"); path != "" {
		settings, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("settings file %s: %w", path, err)
		}
		cfg.Settings = settings
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
