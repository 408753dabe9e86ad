package gtfs

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/config"
)

func TestGTFSIndex_NilReceiver(t *testing.T) {
	var g *GTFSIndex
	if g.GetRoutes() != nil {
		t.Error("nil index should have no routes")
	}
	if g.GetAgencyID() != "" {
		t.Error("nil index should have an empty agency id")
	}
	if ids := g.GetRouteIDsByLongName("Newark - World Trade Center"); len(ids) != 0 {
		t.Errorf("expected no ids, got %v", ids)
	}
}

func TestGTFSIndex_GetRouteIDsByLongName(t *testing.T) {
	g := NewGTFSIndex()
	g.AddRoute(Route{ID: "862", LongName: "Newark - World Trade Center"})
	g.AddRoute(Route{ID: "860", LongName: "Hoboken - World Trade Center"})
	g.AddRoute(Route{ID: "1024", LongName: "Newark - World Trade Center"})
	g.AddRoute(Route{ID: "x"})

	tests := []struct {
		name     string
		longName string
		expected []string
	}{
		{"duplicates kept in file order", "Newark - World Trade Center", []string{"862", "1024"}},
		{"single", "Hoboken - World Trade Center", []string{"860"}},
		{"exact match only", "newark - world trade center", nil},
		{"empty never matches", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.GetRouteIDsByLongName(tt.longName); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewGTFSIndexFromConfig_Empty(t *testing.T) {
	g, err := NewGTFSIndexFromConfig(context.Background(), config.GTFSConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.GetRoutes()) != 0 {
		t.Error("expected empty index")
	}
}

func TestNewGTFSIndexFromConfig_LocalPathWritesCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "gtfs.gob")
	cfg := config.GTFSConfig{StaticURL: writeZip(t, pathFeed()), CachePath: cachePath}

	g, err := NewGTFSIndexFromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(g.GetRoutes()) != 4 {
		t.Fatalf("expected 4 routes, got %d", len(g.GetRoutes()))
	}
	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("cache not written: %v", err)
	}

	// the cache wins even when the source is gone
	cfg.StaticURL = filepath.Join(t.TempDir(), "gone.zip")
	cached, err := NewGTFSIndexFromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("load from cache: %v", err)
	}
	if !reflect.DeepEqual(routeIDs(cached), routeIDs(g)) {
		t.Errorf("cached routes differ: %v vs %v", routeIDs(cached), routeIDs(g))
	}
}

func TestNewGTFSIndexFromConfig_UnwritableCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "missing", "sub", "gtfs.gob")
	cfg := config.GTFSConfig{StaticURL: writeZip(t, pathFeed()), CachePath: cachePath}

	g, err := NewGTFSIndexFromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("cache write failure should not fail the load: %v", err)
	}
	if len(g.GetRoutes()) != 4 {
		t.Fatalf("expected 4 routes, got %d", len(g.GetRoutes()))
	}
	if g.GetAgencyID() != "151" {
		t.Errorf("expected agency 151, got %q", g.GetAgencyID())
	}
	if _, err := os.Stat(cachePath); !os.IsNotExist(err) {
		t.Errorf("expected no cache file, stat returned %v", err)
	}
}

func TestNewGTFSIndexFromConfig_MissingSource(t *testing.T) {
	cfg := config.GTFSConfig{StaticURL: filepath.Join(t.TempDir(), "missing.zip")}
	if _, err := NewGTFSIndexFromConfig(context.Background(), cfg); err == nil {
		t.Error("expected error for missing GTFS zip")
	}
}

func TestGTFSIndex_GetAgencyID(t *testing.T) {
	g := NewGTFSIndex()
	if g.GetAgencyID() != "" {
		t.Errorf("empty index should have no agency id, got %q", g.GetAgencyID())
	}
	g.AddAgency(Agency{ID: "151", Name: "PATH"})
	g.AddAgency(Agency{ID: "other"})
	if g.GetAgencyID() != "151" {
		t.Errorf("expected first agency id 151, got %q", g.GetAgencyID())
	}
}

func routeIDs(g *GTFSIndex) []string {
	var ids []string
	for _, r := range g.GetRoutes() {
		ids = append(ids, r.ID)
	}
	return ids
}
