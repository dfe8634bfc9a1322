package testsupport

import (
	"testing"

	"cdvrpass/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated default config with any provided options
// applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return &cfg
}

// WithServerURL points the config at a specific server, typically an
// httptest server.
func WithServerURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Server.URL = url
	}
}

// WithTimezone sets the display timezone.
func WithTimezone(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Display.Timezone = name
	}
}
