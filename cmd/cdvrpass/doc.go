// Package main hosts the cdvrpass CLI entrypoint and command graph.
//
// The root command takes a program title (plus optional season and episode
// numbers), asks the Channels DVR server which of its scheduled jobs and
// library files match, and prints the pass that triggered each one. The
// passes subcommand lists the server's rules and the config subcommands
// scaffold and check the TOML configuration file. Flags layered here override
// values loaded by internal/config.
package main
