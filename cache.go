package pathalerts

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/converter"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/formatter"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/tracking"
)

// ErrNoFeed is returned by FeedCache.Get before the first successful refresh
var ErrNoFeed = errors.New("pathalerts: no feed available yet")

// FeedCache holds the most recently converted feed and its serialized forms.
// A failed refresh keeps the previous feed.
type FeedCache struct {
	source  Source
	ref     converter.ReferenceData
	opts    converter.Options
	tracker *tracking.Tracker

	mu            sync.RWMutex
	feed          *gtfsrtpb.FeedMessage
	responseCache map[formatter.Format][]byte
	lastRefresh   time.Time
	lastErr       error
	changes       tracking.Changes
}

// NewFeedCache creates an empty cache fed by src
func NewFeedCache(src Source, ref converter.ReferenceData, opts converter.Options) *FeedCache {
	return &FeedCache{
		source:        src,
		ref:           ref,
		opts:          opts,
		tracker:       tracking.NewTracker(),
		responseCache: map[formatter.Format][]byte{},
	}
}

// Refresh fetches and converts the bulletin, replacing the cached feed on success
func (fc *FeedCache) Refresh(ctx context.Context) error {
	fm, err := FetchAlerts(ctx, fc.source, fc.ref, fc.opts)
	if err != nil {
		fc.mu.Lock()
		fc.lastErr = err
		fc.mu.Unlock()
		log.Printf("alerts refresh failed: %v", err)
		return err
	}
	changes := fc.tracker.Observe(fm)

	fc.mu.Lock()
	fc.feed = fm
	fc.responseCache = map[formatter.Format][]byte{}
	fc.lastRefresh = time.Unix(int64(fm.GetHeader().GetTimestamp()), 0).UTC()
	fc.lastErr = nil
	fc.changes = changes
	fc.mu.Unlock()

	if changes.Empty() {
		log.Printf("alerts refreshed: %d alert(s), no changes", len(fm.GetEntity()))
	} else {
		log.Printf("alerts refreshed: %d alert(s), %s", len(fm.GetEntity()), changes)
	}
	return nil
}

// Get returns the cached feed serialized as f. Serializations are memoized until the next refresh.
func (fc *FeedCache) Get(f formatter.Format) ([]byte, error) {
	fc.mu.RLock()
	feed := fc.feed
	buf, ok := fc.responseCache[f]
	fc.mu.RUnlock()
	if feed == nil {
		return nil, ErrNoFeed
	}
	if ok {
		return buf, nil
	}
	buf, err := formatter.Marshal(feed, f)
	if err != nil {
		return nil, err
	}
	fc.mu.Lock()
	if fc.feed == feed {
		fc.responseCache[f] = buf
	}
	fc.mu.Unlock()
	return buf, nil
}

// Feed returns the cached feed, or nil before the first successful refresh
func (fc *FeedCache) Feed() *gtfsrtpb.FeedMessage {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return fc.feed
}

// LastRefresh returns the header time of the cached feed
func (fc *FeedCache) LastRefresh() time.Time {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return fc.lastRefresh
}

// LastError returns the error of the latest refresh, nil if it succeeded
func (fc *FeedCache) LastError() error {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return fc.lastErr
}

// Changes returns the alert changes seen by the latest successful refresh
func (fc *FeedCache) Changes() tracking.Changes {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return fc.changes
}
