// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/tailquest/internal/chat"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DBPath      string
	CatalogPath string // empty uses the embedded catalog
	Addr        string
	Chat        chat.Config
	Log         LogConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string // text or json
	File   string
}

// Load reads an optional .env file, then configuration from environment
// variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	dbPath := os.Getenv("TAILQUEST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tailquest", "tailquest.db")
	}

	cfg := &Config{
		DBPath:      dbPath,
		CatalogPath: getEnv("TAILQUEST_CATALOG", ""),
		Addr:        getEnv("TAILQUEST_ADDR", ":8080"),
		Chat:        chat.LoadConfig(),
		Log: LogConfig{
			Level:  getEnv("TAILQUEST_LOG_LEVEL", "info"),
			Format: getEnv("TAILQUEST_LOG_FORMAT", "text"),
			File:   getEnv("TAILQUEST_LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("TAILQUEST_DB cannot be empty")
	}
	if c.Addr == "" {
		return fmt.Errorf("TAILQUEST_ADDR cannot be empty")
	}
	if c.Chat.TimeoutMs <= 0 {
		return fmt.Errorf("TAILQUEST_CHAT_TIMEOUT_MS must be > 0")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("TAILQUEST_LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// NewLogger builds a slog.Logger. When a log file is configured it is
// opened for append and used instead of fallback; the returned close func
// releases it.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	w, closeFn := fallback, func() error { return nil }
	if c.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(c.Log.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	if w == nil {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if c.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler), closeFn, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("TAILQUEST_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
