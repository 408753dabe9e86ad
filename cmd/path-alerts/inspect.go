package main

import (
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/formatter"
)

var inspectFlags feedFlags

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a summary of the current alerts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fm, err := buildFeed(cmd.Context(), inspectFlags)
		if err != nil {
			return err
		}
		return formatter.WriteSummary(cmd.OutOrStdout(), fm)
	},
}

func init() {
	inspectFlags.register(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}
