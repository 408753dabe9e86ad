package tracking

import (
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/converter"
)

var base = time.Date(2025, 11, 26, 8, 0, 0, 0, time.UTC)

func feedAt(ts time.Time, alerts ...converter.Alert) *gtfsrtpb.FeedMessage {
	return converter.BuildFeedMessage(alerts, nil, ts, converter.Options{})
}

func alert(index int, text string) converter.Alert {
	return converter.Alert{Index: index, Timestamp: base, Text: text}
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot(feedAt(base, alert(0, "a"), alert(2, "b")))
	assert.Equal(t, base.Unix(), s.GetTimestamp())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"path_alert_0", "path_alert_2"}, s.IDs())
	text, ok := s.Text("path_alert_2")
	require.True(t, ok)
	assert.Equal(t, "b", text)
	_, ok = s.Text("path_alert_1")
	assert.False(t, ok)
}

func TestSnapshot_DiffAgainstNil(t *testing.T) {
	c := NewSnapshot(feedAt(base, alert(0, "a"))).Diff(nil)
	assert.Equal(t, []string{"path_alert_0"}, c.Added)
	assert.Empty(t, c.Removed)
	assert.Empty(t, c.Updated)
}

func TestTracker_Observe(t *testing.T) {
	tr := NewTracker()
	assert.Nil(t, tr.Current())

	first := tr.Observe(feedAt(base, alert(0, "a"), alert(1, "b")))
	assert.Equal(t, []string{"path_alert_0", "path_alert_1"}, first.Added)

	second := tr.Observe(feedAt(base.Add(time.Minute), alert(0, "a"), alert(1, "b changed"), alert(2, "c")))
	assert.Equal(t, []string{"path_alert_2"}, second.Added)
	assert.Equal(t, []string{"path_alert_1"}, second.Updated)
	assert.Empty(t, second.Removed)
	assert.Equal(t, "1 added, 0 removed, 1 updated", second.String())

	third := tr.Observe(feedAt(base.Add(2*time.Minute), alert(2, "c")))
	assert.Equal(t, []string{"path_alert_0", "path_alert_1"}, third.Removed)
	assert.Empty(t, third.Added)

	cur := tr.Current()
	require.NotNil(t, cur)
	require.NotNil(t, cur.Previous())
	assert.Nil(t, cur.Previous().Previous())
}

func TestTracker_SameFeedHasNoChanges(t *testing.T) {
	tr := NewTracker()
	tr.Observe(feedAt(base, alert(0, "a")))
	c := tr.Observe(feedAt(base.Add(time.Minute), alert(0, "a")))
	assert.True(t, c.Empty())
}

func TestTracker_IgnoresOlderFeed(t *testing.T) {
	tr := NewTracker()
	tr.Observe(feedAt(base, alert(0, "a")))
	c := tr.Observe(feedAt(base.Add(-time.Minute), alert(5, "old")))
	assert.True(t, c.Empty())
	assert.Equal(t, base.Unix(), tr.Current().GetTimestamp())
}
