// Package config loads, normalizes, and validates cdvrpass configuration data.
//
// It supplies repository defaults (a server on the loopback address at port
// 8089), reads TOML files from ~/.config/cdvrpass/config.toml or
// ./cdvrpass.toml, and honours the CDVR_SERVER_URL environment fallback.
// Command-line flags are layered on top by the CLI after Load returns.
package config
