package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.URL != "" {
		parsed, err := url.Parse(c.Server.URL)
		if err != nil {
			return fmt.Errorf("server.url: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("server.url must use http or https, got %q", c.Server.URL)
		}
		if parsed.Host == "" {
			return fmt.Errorf("server.url must include a host, got %q", c.Server.URL)
		}
	}
	port, err := strconv.Atoi(c.Server.PortNumber)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("server.port_number must be between 1 and 65535, got %q", c.Server.PortNumber)
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("server.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("display.color must be auto, always, or never, got %q", c.Display.Color)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
