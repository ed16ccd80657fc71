package chat

import (
	"os"
	"strconv"
)

// Config holds the chat webhook settings.
type Config struct {
	Endpoint  string
	TimeoutMs int
	// Raw disables reply sanitizing.
	Raw bool
}

// DefaultEndpoint is the tutor webhook used when TAILQUEST_CHAT_ENDPOINT
// is unset.
const DefaultEndpoint = "https://joyr13384.app.n8n.cloud/webhook/98594f76-a4df-4e7c-a9f7-85167da4528a"

// DefaultConfig returns a Config for the default webhook with a 30s timeout.
func DefaultConfig() Config {
	return Config{Endpoint: DefaultEndpoint, TimeoutMs: 30000}
}

// LoadConfig reads chat configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TAILQUEST_CHAT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TAILQUEST_CHAT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TAILQUEST_CHAT_RAW"); v != "" {
		cfg.Raw, _ = strconv.ParseBool(v)
	}
	return cfg
}
