package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"TAILQUEST_DB", "TAILQUEST_CATALOG", "TAILQUEST_ADDR", "TAILQUEST_LOG_LEVEL", "TAILQUEST_LOG_FORMAT", "TAILQUEST_LOG_FILE", "TAILQUEST_CHAT_ENDPOINT", "TAILQUEST_CHAT_TIMEOUT_MS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".tailquest", "tailquest.db"), cfg.DBPath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, 30000, cfg.Chat.TimeoutMs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TAILQUEST_ADDR=:9999\nTAILQUEST_CHAT_ENDPOINT=https://hooks.example.com/x\n"), 0o644))
	t.Setenv("TAILQUEST_DB", filepath.Join(dir, "t.db"))
	t.Setenv("TAILQUEST_ADDR", "")
	os.Unsetenv("TAILQUEST_ADDR")
	t.Setenv("TAILQUEST_CHAT_ENDPOINT", "")
	os.Unsetenv("TAILQUEST_CHAT_ENDPOINT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "https://hooks.example.com/x", cfg.Chat.Endpoint)
}

func TestLoad_EnvWinsOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TAILQUEST_ADDR=:9999\n"), 0o644))
	t.Setenv("TAILQUEST_DB", filepath.Join(dir, "t.db"))
	t.Setenv("TAILQUEST_ADDR", ":7000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DBPath: "x.db",
			Addr:   ":8080",
			Log:    LogConfig{Level: "info", Format: "text"},
		}
	}
	base := valid()
	base.Chat.TimeoutMs = 1000
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db", func(c *Config) { c.DBPath = "" }},
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"zero timeout", func(c *Config) { c.Chat.TimeoutMs = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			c.Chat.TimeoutMs = 1000
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestNewLogger_FallbackWriter(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "warn", Format: "json"}}
	var buf bytes.Buffer

	logger, closeFn, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tailquest.log")
	cfg := &Config{Log: LogConfig{Level: "debug", Format: "text", File: path}}

	logger, closeFn, err := cfg.NewLogger(nil)
	require.NoError(t, err)
	logger.Debug("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
