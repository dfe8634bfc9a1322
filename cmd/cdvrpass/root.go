package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cdvrpass/internal/passfinder"
	"cdvrpass/internal/report"
	"cdvrpass/internal/services"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	var title string
	var season, episode int

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:   "cdvrpass",
		Short: "Find which pass triggered the recording of a program.",
		Long: "Find which pass triggered the recording of a program.\n\n" +
			"By default, use the URL http://127.0.0.1:8089 to query the Channels DVR server.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("title") {
				return errors.New(`required flag(s) "title" not set`)
			}
			return runLookup(cmd, ctx, passfinder.Criteria{
				Title:   title,
				Season:  season,
				Episode: episode,
			})
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().StringVarP(&title, "title", "t", "", "Title of the program for which you want to find the pass.")
	rootCmd.Flags().IntVarP(&season, "season_number", "s", 0, "For a series: the season number. Not required.")
	rootCmd.Flags().IntVarP(&episode, "episode_number", "e", 0, "For a series: episode number. Not required.")
	rootCmd.Flags().BoolP("version", "v", false, "Print the version number and exit the program.")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVarP(&flags.ipAddress, "ip_address", "i", "", "IP address of the Channels DVR server. Default: 127.0.0.1")
	pf.StringVarP(&flags.portNumber, "port_number", "p", "", "Port number of the Channels DVR server. Default: 8089")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newPassesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func runLookup(cmd *cobra.Command, ctx *commandContext, criteria passfinder.Criteria) error {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	client, err := ctx.client(cmd)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	runCtx := services.WithRequestID(cmd.Context(), uuid.NewString())
	out := report.NewWriter(cmd.OutOrStdout(), report.Options{
		Location: loc,
		Colorize: ctx.colorize(cmd),
		Logger:   logger,
	})
	if err := out.Preamble(client.BaseURL()); err != nil {
		return err
	}

	result, err := passfinder.NewFinder(client, logger).Find(runCtx, criteria)
	if err != nil {
		return err
	}
	return out.Result(result)
}
