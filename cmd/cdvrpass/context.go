package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"cdvrpass/internal/channelsdvr"
	"cdvrpass/internal/config"
	"cdvrpass/internal/logging"
)

// globalFlags holds the persistent flags that override config values.
type globalFlags struct {
	configPath string
	ipAddress  string
	portNumber string
	logLevel   string
	noColor    bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
	logErr     error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the config file once and layers explicitly set flags on
// top of it.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if c.applyOverrides(cmd, cfg) {
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cmd *cobra.Command, cfg *config.Config) bool {
	flags := cmd.Flags()
	changed := false
	if flags.Changed("ip_address") {
		cfg.Server.IPAddress = strings.TrimSpace(c.flags.ipAddress)
		cfg.Server.URL = ""
		changed = true
	}
	if flags.Changed("port_number") {
		cfg.Server.PortNumber = strings.TrimSpace(c.flags.portNumber)
		cfg.Server.URL = ""
		changed = true
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(c.flags.logLevel))
		changed = true
	}
	if c.flags.noColor {
		cfg.Display.Color = "never"
	}
	return changed
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig(cmd)
		if err != nil {
			c.logErr = err
			return
		}
		c.log, c.logErr = logging.NewFromConfig(cfg)
	})
	return c.log, c.logErr
}

func (c *commandContext) client(cmd *cobra.Command) (*channelsdvr.Client, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	return channelsdvr.NewConfiguredClient(cfg, logger)
}

// colorize reports whether output to cmd's stdout should carry ANSI colors.
func (c *commandContext) colorize(cmd *cobra.Command) bool {
	cfg, err := c.ensureConfig(cmd)
	if err != nil || cfg == nil {
		return false
	}
	switch cfg.Display.Color {
	case "always":
		return true
	case "never":
		return false
	}
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
