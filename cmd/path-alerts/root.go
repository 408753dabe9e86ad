package main

import (
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/config"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/converter"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/internal"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "path-alerts",
	Short: "Publish PATH service alerts as GTFS-Realtime",
	Long: `path-alerts reads the PATH alert bulletin and converts it into a
GTFS-Realtime alerts feed. Use oneshot to write a single feed, inspect to
print a summary, or serve to publish the feed over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		internal.InitLogging(cmd.ErrOrStderr(), verbose)
		if configPath != "" {
			return config.LoadAppConfig(configPath)
		}
		return config.LoadAppConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default config.yml or ./config/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// converterOptions maps the loaded config onto conversion options
func converterOptions(agency, language string) converter.Options {
	opts := converter.Options{
		DefaultAgencyID: config.Config.GTFS.AgencyID,
		Language:        config.Config.Feed.Language,
	}
	if agency != "" {
		opts.DefaultAgencyID = agency
	}
	if language != "" {
		opts.Language = language
	}
	return opts
}
