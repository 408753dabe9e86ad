package main

import (
	"context"
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/spf13/cobra"

	pathalerts "github.com/theoremus-urban-solutions/path-alerts-gtfsrt"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/config"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/formatter"
)

type feedFlags struct {
	source   string
	gtfs     string
	agency   string
	language string
}

func (f *feedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "bulletin URL or local envelope/HTML file (default from config)")
	cmd.Flags().StringVar(&f.gtfs, "gtfs", "", "GTFS static zip URL or path used to resolve route ids")
	cmd.Flags().StringVar(&f.agency, "agency", "", "agency id for alerts without a GTFS agency")
	cmd.Flags().StringVar(&f.language, "language", "", "translation language tag")
}

var (
	oneshotFlags  feedFlags
	oneshotFormat string
	oneshotOutput string
)

var oneshotCmd = &cobra.Command{
	Use:   "oneshot",
	Short: "Fetch the bulletin once and write a GTFS-Realtime feed",
	Long: `Fetches the alert bulletin, converts it and writes the feed to
--output, or to stdout when no output is given.`,
	RunE: runOneshot,
}

func init() {
	oneshotFlags.register(oneshotCmd)
	oneshotCmd.Flags().StringVarP(&oneshotFormat, "format", "f", "", "output format: pb, json or text (default from config)")
	oneshotCmd.Flags().StringVarP(&oneshotOutput, "output", "o", "", "output file (default from config, stdout if empty)")
	rootCmd.AddCommand(oneshotCmd)
}

func runOneshot(cmd *cobra.Command, _ []string) error {
	name := oneshotFormat
	if name == "" {
		name = config.Config.Feed.Format
	}
	f, err := formatter.ParseFormat(name)
	if err != nil {
		return err
	}
	fm, err := buildFeed(cmd.Context(), oneshotFlags)
	if err != nil {
		return err
	}

	output := oneshotOutput
	if output == "" {
		output = config.Config.Feed.Output
	}
	if output == "" {
		data, err := formatter.Marshal(fm, f)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := formatter.WriteFile(fm, output, f); err != nil {
		return err
	}
	cmd.PrintErrf("wrote %d alert(s) to %s\n", len(fm.GetEntity()), output)
	return nil
}

func buildFeed(ctx context.Context, flags feedFlags) (*gtfsrtpb.FeedMessage, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ref, err := loadReference(ctx, flags.gtfs)
	if err != nil {
		return nil, err
	}
	fm, err := pathalerts.FetchAlerts(ctx, newSource(flags.source), ref, converterOptions(flags.agency, flags.language))
	if err != nil {
		return nil, fmt.Errorf("fetch alerts: %w", err)
	}
	return fm, nil
}
