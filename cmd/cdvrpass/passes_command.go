package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cdvrpass/internal/channelsdvr"
	"cdvrpass/internal/services"
)

func newPassesCommand(ctx *commandContext) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "passes",
		Short: "List the passes (recording rules) defined on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client(cmd)
			if err != nil {
				return err
			}
			runCtx := services.WithRequestID(cmd.Context(), uuid.NewString())
			rules, err := client.Rules(runCtx)
			if err != nil {
				return err
			}
			rules = filterRules(rules, filter)

			out := cmd.OutOrStdout()
			if len(rules) == 0 {
				fmt.Fprintln(out, "No passes found")
				return nil
			}
			fmt.Fprintln(out, renderPassTable(rules, ctx.colorize(cmd)))
			fmt.Fprintf(out, "%d pass(es) on %s\n", len(rules), client.BaseURL())
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "name", "n", "", "Only list passes whose name contains this text")
	return cmd
}

func filterRules(rules []channelsdvr.Rule, name string) []channelsdvr.Rule {
	if name == "" {
		return rules
	}
	filtered := make([]channelsdvr.Rule, 0, len(rules))
	for _, r := range rules {
		if strings.Contains(r.Name, name) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func renderPassTable(rules []channelsdvr.Rule, colorize bool) string {
	sorted := append([]channelsdvr.Rule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []string{r.ID, r.Name, r.Query, strconv.FormatBool(r.Paused)})
	}
	return renderTable(
		[]string{"ID", "Name", "Query", "Paused"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
		colorize,
	)
}
