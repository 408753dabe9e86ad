package converter

import (
	"errors"
	"time"
)

const (
	// EntityIDPrefix is prepended to the station block index to form entity ids
	EntityIDPrefix = "path_alert_"

	// DefaultAgencyID scopes alerts when the reference dataset names no agency
	DefaultAgencyID = "PATH"

	// DefaultLanguage is the language of the single description translation
	DefaultLanguage = "en"

	// RealtimeVersion is the gtfs_realtime_version written to the feed header
	RealtimeVersion = "2.0"

	// FeedVersion is the feed_version written to the feed header
	FeedVersion = "1.0"
)

// ErrClock is returned when the pipeline clock yields no usable instant.
// Both the timestamp fallback and the feed header depend on it, so it aborts the run.
var ErrClock = errors.New("converter: clock returned zero time")

// StationAlert is one station block as found in the bulletin.
// Index is the block's zero-based position in document order.
type StationAlert struct {
	Index     int
	Timestamp time.Time
	RawText   string
}

// Alert is a StationAlert whose text went through NormalizeText
type Alert struct {
	Index     int
	Timestamp time.Time
	Text      string
}

// ReferenceData is the read-only view of the static GTFS dataset.
// *gtfs.GTFSIndex implements it, including as a nil pointer.
type ReferenceData interface {
	// GetRouteIDsByLongName returns every route id whose route_long_name equals
	// longName, in file order
	GetRouteIDsByLongName(longName string) []string
	// GetAgencyID returns the first agency's id, or ""
	GetAgencyID() string
}

// Options tunes the conversion. The zero value is ready to use.
type Options struct {
	// DefaultAgencyID replaces DefaultAgencyID as the agency-wide fallback scope
	DefaultAgencyID string

	// Language replaces DefaultLanguage on description translations
	Language string

	// Now is the pipeline clock; time.Now when nil. It is read once per run.
	Now func() time.Time
}

func (o Options) agencyID() string {
	if o.DefaultAgencyID != "" {
		return o.DefaultAgencyID
	}
	return DefaultAgencyID
}

func (o Options) language() string {
	if o.Language != "" {
		return o.Language
	}
	return DefaultLanguage
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
