package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	pathalerts "github.com/theoremus-urban-solutions/path-alerts-gtfsrt"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/bulletin"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/config"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the GTFS-Realtime alerts feed over HTTP",
	Long: `Refreshes the alert bulletin every bulletin.readIntervalMS and serves
the latest feed under /api/gtfsrt/. Stops on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ref, err := loadReference(ctx, "")
	if err != nil {
		return err
	}
	cmd.PrintErrf("loaded %d route(s) from GTFS\n", len(ref.GetRoutes()))

	cache := pathalerts.NewFeedCache(
		bulletin.NewClientFromConfig(cfg.Bulletin),
		ref,
		converterOptions("", ""),
	)
	refresher := pathalerts.NewRefresher(cache, time.Duration(cfg.Bulletin.ReadIntervalMS)*time.Millisecond)
	refresher.Start(ctx)

	server := pathalerts.NewServer(cfg.Server.Port, cache, cfg.Bulletin.ReadIntervalMS)
	server.Start()
	pathalerts.HandleGracefulShutdown(server, refresher)
	return nil
}
