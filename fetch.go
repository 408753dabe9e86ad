package pathalerts

import (
	"context"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/converter"
)

// Source yields the raw bulletin HTML. *bulletin.Client implements it.
type Source interface {
	FetchContent(ctx context.Context) (string, error)
}

// FetchAlerts fetches the bulletin from src and converts it to a feed
func FetchAlerts(ctx context.Context, src Source, ref converter.ReferenceData, opts converter.Options) (*gtfsrtpb.FeedMessage, error) {
	content, err := src.FetchContent(ctx)
	if err != nil {
		return nil, err
	}
	return converter.NewConverter(ref, opts).Convert(content)
}
