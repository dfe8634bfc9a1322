package config

const (
	defaultConfigPath     = "~/.config/cdvrpass/config.toml"
	projectConfigName     = "cdvrpass.toml"
	defaultIPAddress      = "127.0.0.1"
	defaultPortNumber     = "8089"
	defaultRequestTimeout = 30
	defaultColorMode      = "auto"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultLogOutput      = "stderr"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			IPAddress:      defaultIPAddress,
			PortNumber:     defaultPortNumber,
			RequestTimeout: defaultRequestTimeout,
		},
		Display: Display{
			Color: defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Output: []string{defaultLogOutput},
		},
	}
}
