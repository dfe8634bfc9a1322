package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeServer()
	c.normalizeDisplay()
	c.normalizeLogging()
}

func (c *Config) normalizeServer() {
	if strings.TrimSpace(c.Server.URL) == "" {
		if value, ok := os.LookupEnv("CDVR_SERVER_URL"); ok {
			c.Server.URL = value
		}
	}
	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")
	c.Server.IPAddress = strings.TrimSpace(c.Server.IPAddress)
	if c.Server.IPAddress == "" {
		c.Server.IPAddress = defaultIPAddress
	}
	c.Server.PortNumber = strings.TrimSpace(c.Server.PortNumber)
	if c.Server.PortNumber == "" {
		c.Server.PortNumber = defaultPortNumber
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeDisplay() {
	c.Display.Timezone = strings.TrimSpace(c.Display.Timezone)
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultColorMode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	outputs := make([]string, 0, len(c.Logging.Output))
	for _, output := range c.Logging.Output {
		output = strings.TrimSpace(output)
		switch strings.ToLower(output) {
		case "":
			continue
		case "stdout", "stderr":
			outputs = append(outputs, strings.ToLower(output))
		default:
			outputs = append(outputs, output)
		}
	}
	if len(outputs) == 0 {
		outputs = []string{defaultLogOutput}
	}
	c.Logging.Output = outputs
}
