package converter

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/internal"
)

// Converter turns alert bulletins into GTFS-Realtime feeds
type Converter struct {
	GTFS ReferenceData // may be nil: every alert is then scoped to the whole agency
	Opts Options
}

// NewConverter creates a new converter instance
func NewConverter(ref ReferenceData, opts Options) *Converter {
	return &Converter{GTFS: ref, Opts: opts}
}

// Convert runs the whole pipeline on the bulletin markup.
// The clock is read once; the same instant stamps the header and replaces
// unparseable block timestamps.
func (c *Converter) Convert(content string) (*gtfsrtpb.FeedMessage, error) {
	now := c.Opts.now()
	if now.IsZero() {
		return nil, ErrClock
	}

	stations, err := ExtractStationAlerts(content, now)
	if err != nil {
		return nil, err
	}
	alerts := CleanStationAlerts(stations)
	internal.Debugf("bulletin: %d station blocks, %d alerts kept", len(stations), len(alerts))

	return BuildFeedMessage(alerts, c.GTFS, now, c.Opts), nil
}

// ParseAlerts converts bulletin markup with default options.
// ref may be nil when no reference dataset is available.
func ParseAlerts(content string, ref ReferenceData) (*gtfsrtpb.FeedMessage, error) {
	return NewConverter(ref, Options{}).Convert(content)
}
