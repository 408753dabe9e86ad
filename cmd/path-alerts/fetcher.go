package main

import (
	"bytes"
	"context"
	"os"
	"strings"

	pathalerts "github.com/theoremus-urban-solutions/path-alerts-gtfsrt"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/bulletin"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/config"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/gtfs"
)

// fileSource reads a bulletin from disk. The file may hold the JSON
// envelope served by the API or the bare bulletin HTML.
type fileSource struct {
	path string
}

func (f fileSource) FetchContent(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return bulletin.DecodeEnvelope(trimmed)
	}
	return string(data), nil
}

// newSource picks a source for urlOrPath: http(s) URLs go through the
// bulletin client, anything else is read from disk. Empty means the configured URL.
func newSource(urlOrPath string) pathalerts.Source {
	if urlOrPath == "" {
		return bulletin.NewClientFromConfig(config.Config.Bulletin)
	}
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return fileSource{path: urlOrPath}
	}
	cfg := config.Config.Bulletin
	cfg.URL = urlOrPath
	return bulletin.NewClientFromConfig(cfg)
}

// loadReference loads the GTFS index from gtfsPath, falling back to the config
func loadReference(ctx context.Context, gtfsPath string) (*gtfs.GTFSIndex, error) {
	cfg := config.Config.GTFS
	if gtfsPath != "" {
		cfg.StaticURL = gtfsPath
		cfg.CachePath = ""
	}
	return gtfs.NewGTFSIndexFromConfig(ctx, cfg)
}
