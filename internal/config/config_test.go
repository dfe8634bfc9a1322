package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cdvrpass/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("CDVR_SERVER_URL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "cdvrpass", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if got := cfg.ServerURL(); got != "http://127.0.0.1:8089" {
		t.Fatalf("unexpected server url: %q", got)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Fatalf("unexpected request timeout: %s", cfg.RequestTimeout())
	}
	if cfg.Display.Color != "auto" {
		t.Fatalf("unexpected color mode: %q", cfg.Display.Color)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc != time.Local {
		t.Fatalf("expected local zone, got %v", loc)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("CDVR_SERVER_URL", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "cdvrpass.toml")

	type payload struct {
		Server struct {
			IPAddress      string `toml:"ip_address"`
			PortNumber     string `toml:"port_number"`
			RequestTimeout int    `toml:"request_timeout"`
		} `toml:"server"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Server.IPAddress = " 192.168.1.20 "
	custom.Server.PortNumber = "9000"
	custom.Server.RequestTimeout = 5
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to resolve, got %q exists=%v", resolved, exists)
	}
	if got := cfg.ServerURL(); got != "http://192.168.1.20:9000" {
		t.Fatalf("unexpected server url: %q", got)
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.RequestTimeout())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", cfg.Logging)
	}
}

func TestLoadExpandsLogOutputs(t *testing.T) {
	t.Setenv("CDVR_SERVER_URL", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	configPath := filepath.Join(t.TempDir(), "cdvrpass.toml")
	content := "[logging]\noutput = [\" STDERR \", \"\", \"~/logs/cdvrpass.log\"]\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"stderr", filepath.Join(home, "logs", "cdvrpass.log")}
	if len(cfg.Logging.Output) != len(want) {
		t.Fatalf("unexpected outputs: %v", cfg.Logging.Output)
	}
	for i := range want {
		if cfg.Logging.Output[i] != want[i] {
			t.Fatalf("output %d: got %q want %q", i, cfg.Logging.Output[i], want[i])
		}
	}
}

func TestLoadDefaultsLogOutputToStderr(t *testing.T) {
	t.Setenv("CDVR_SERVER_URL", "")
	configPath := filepath.Join(t.TempDir(), "cdvrpass.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\noutput = []\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Logging.Output) != 1 || cfg.Logging.Output[0] != "stderr" {
		t.Fatalf("expected stderr default, got %v", cfg.Logging.Output)
	}
}

func TestServerURLOverridesAddress(t *testing.T) {
	t.Setenv("CDVR_SERVER_URL", "http://dvr.example:8089/")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.ServerURL(); got != "http://dvr.example:8089" {
		t.Fatalf("expected env url without trailing slash, got %q", got)
	}
}

func TestServerURLBracketsIPv6(t *testing.T) {
	cfg := config.Default()
	cfg.Server.IPAddress = "::1"
	if got := cfg.ServerURL(); got != "http://[::1]:8089" {
		t.Fatalf("unexpected ipv6 url: %q", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"port", func(c *config.Config) { c.Server.PortNumber = "http" }, "server.port_number"},
		{"port range", func(c *config.Config) { c.Server.PortNumber = "70000" }, "server.port_number"},
		{"timeout", func(c *config.Config) { c.Server.RequestTimeout = -1 }, "server.request_timeout"},
		{"url scheme", func(c *config.Config) { c.Server.URL = "ftp://dvr" }, "server.url"},
		{"color", func(c *config.Config) { c.Display.Color = "sometimes" }, "display.color"},
		{"timezone", func(c *config.Config) { c.Display.Timezone = "Mars/Olympus_Mons" }, "display.timezone"},
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\nip_address = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	t.Setenv("CDVR_SERVER_URL", "")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.ServerURL() != "http://127.0.0.1:8089" {
		t.Fatalf("unexpected sample server url: %q", cfg.ServerURL())
	}
}
