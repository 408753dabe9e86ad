package gtfs

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/config"
)

// GTFSIndex stores the reference routes and agencies in file order.
// Fields are exported so the index can be gob-cached (see cache.go).
type GTFSIndex struct {
	Routes   []Route
	Agencies []Agency
}

// NewGTFSIndex creates a new empty GTFS index
func NewGTFSIndex() *GTFSIndex {
	return &GTFSIndex{
		Routes:   []Route{},
		Agencies: []Agency{},
	}
}

// NewGTFSIndexFromConfig loads the index described by cfg. An http(s) StaticURL is
// downloaded, anything else is treated as a local zip path. When CachePath is set
// a previously cached index is preferred and a freshly loaded one is written back;
// a failed write is logged and the loaded index is still returned.
// An empty StaticURL yields an empty index: route resolution is optional.
func NewGTFSIndexFromConfig(ctx context.Context, cfg config.GTFSConfig) (*GTFSIndex, error) {
	if cfg.CachePath != "" {
		if g, err := DeserializeIndexFromFile(cfg.CachePath); err == nil {
			return g, nil
		}
	}
	if cfg.StaticURL == "" {
		return NewGTFSIndex(), nil
	}
	var (
		g   *GTFSIndex
		err error
	)
	if strings.HasPrefix(cfg.StaticURL, "http://") || strings.HasPrefix(cfg.StaticURL, "https://") {
		g, err = NewGTFSIndexFromURL(ctx, cfg.StaticURL)
	} else {
		g, err = NewGTFSIndexFromPath(cfg.StaticURL)
	}
	if err != nil {
		return nil, fmt.Errorf("gtfs: load %s: %w", cfg.StaticURL, err)
	}
	if cfg.CachePath != "" {
		if err := SerializeIndexToFile(g, cfg.CachePath); err != nil {
			log.Printf("gtfs: write cache %s: %v", cfg.CachePath, err)
		}
	}
	return g, nil
}

// AddRoute appends a route, keeping file order
func (g *GTFSIndex) AddRoute(r Route) { g.Routes = append(g.Routes, r) }

// AddAgency appends an agency, keeping file order
func (g *GTFSIndex) AddAgency(a Agency) { g.Agencies = append(g.Agencies, a) }

// Accessor methods. All of them accept a nil receiver so callers can pass
// a nil *GTFSIndex when no reference dataset is available.

func (g *GTFSIndex) GetRoutes() []Route {
	if g == nil {
		return nil
	}
	return g.Routes
}

// GetAgencyID returns the id of the first agency, or "" when there is none
func (g *GTFSIndex) GetAgencyID() string {
	if g == nil || len(g.Agencies) == 0 {
		return ""
	}
	return g.Agencies[0].ID
}

// GetRouteIDsByLongName returns the ids of every route whose long name equals
// longName exactly. Routes sharing a long name are all returned, in file order.
func (g *GTFSIndex) GetRouteIDsByLongName(longName string) []string {
	var ids []string
	for _, r := range g.GetRoutes() {
		if r.LongName != "" && r.LongName == longName {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
