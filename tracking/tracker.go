package tracking

import (
	"fmt"
	"sync"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// Snapshot is a point-in-time capture of the alerts in a feed
type Snapshot struct {
	feedTimestamp int64
	previous      *Snapshot
	order         []string
	texts         map[string]string
}

// NewSnapshot captures the alert entities of fm
func NewSnapshot(fm *gtfsrtpb.FeedMessage) *Snapshot {
	s := &Snapshot{
		feedTimestamp: int64(fm.GetHeader().GetTimestamp()),
		texts:         map[string]string{},
	}
	for _, e := range fm.GetEntity() {
		id := e.GetId()
		if _, dup := s.texts[id]; dup {
			continue
		}
		s.order = append(s.order, id)
		s.texts[id] = descriptionText(e.GetAlert())
	}
	return s
}

// GetTimestamp returns the header timestamp of the captured feed
func (s *Snapshot) GetTimestamp() int64 { return s.feedTimestamp }

// Len returns the number of captured alerts
func (s *Snapshot) Len() int { return len(s.order) }

// IDs returns the entity ids in feed order
func (s *Snapshot) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Text returns the description captured for id
func (s *Snapshot) Text(id string) (string, bool) {
	t, ok := s.texts[id]
	return t, ok
}

// Previous returns the snapshot this one replaced
func (s *Snapshot) Previous() *Snapshot { return s.previous }

// Diff compares s with prev; a nil prev reports every alert as added
func (s *Snapshot) Diff(prev *Snapshot) Changes {
	var c Changes
	for _, id := range s.order {
		if prev == nil {
			c.Added = append(c.Added, id)
			continue
		}
		old, ok := prev.texts[id]
		switch {
		case !ok:
			c.Added = append(c.Added, id)
		case old != s.texts[id]:
			c.Updated = append(c.Updated, id)
		}
	}
	if prev != nil {
		for _, id := range prev.order {
			if _, ok := s.texts[id]; !ok {
				c.Removed = append(c.Removed, id)
			}
		}
	}
	return c
}

// Changes lists entity ids that differ between two snapshots
type Changes struct {
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
	Updated []string `json:"updated,omitempty"`
}

// Empty reports whether nothing changed
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Updated) == 0
}

func (c Changes) String() string {
	return fmt.Sprintf("%d added, %d removed, %d updated", len(c.Added), len(c.Removed), len(c.Updated))
}

// Tracker holds the latest snapshot
type Tracker struct {
	mu      sync.Mutex
	current *Snapshot
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker { return &Tracker{} }

// Observe records fm and returns its changes against the previous feed.
// A feed older than the current snapshot is ignored.
func (t *Tracker) Observe(fm *gtfsrtpb.FeedMessage) Changes {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := NewSnapshot(fm)
	if t.current != nil && next.feedTimestamp < t.current.feedTimestamp {
		return Changes{}
	}
	changes := next.Diff(t.current)
	next.previous = t.current
	if t.current != nil {
		// only one level of history is kept
		t.current.previous = nil
	}
	t.current = next
	return changes
}

// Current returns the latest snapshot, or nil before the first Observe
func (t *Tracker) Current() *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func descriptionText(alert *gtfsrtpb.Alert) string {
	translations := alert.GetDescriptionText().GetTranslation()
	if len(translations) == 0 {
		return ""
	}
	return translations[0].GetText()
}
