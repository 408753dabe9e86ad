package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "apologize with full filler",
			in:   "Service is delayed. We apologize for the inconvenience this may have caused.",
			want: "Service is delayed.",
		},
		{
			name: "regret only",
			in:   "We regret the inconvenience.",
			want: "",
		},
		{
			name: "has caused",
			in:   "JSQ-33 trains are running on a 10 min delay. We apologize for any inconvenience this has caused.",
			want: "JSQ-33 trains are running on a 10 min delay.",
		},
		{
			name: "trailing sentence removed with clause",
			in:   "Elevator out of service. We apologize for this inconvenience. Use the stairs at Grove St.",
			want: "Elevator out of service.",
		},
		{
			name: "no apology",
			in:   "  HOB-WTC service resumed.  ",
			want: "HOB-WTC service resumed.",
		},
		{
			name: "apology without inconvenience is kept",
			in:   "We apologize for the delay.",
			want: "We apologize for the delay.",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"Service is delayed. We apologize for the inconvenience this may have caused.",
		"We regret the inconvenience.",
		"NWK-WTC: trains every 20 min. We regret any inconvenience",
		"Nothing to strip here.",
		"",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}

func TestCleanStationAlerts_DropsEmptyAndKeepsIndices(t *testing.T) {
	ts := time.Date(2025, 11, 25, 23, 21, 0, 0, time.UTC)
	stations := []StationAlert{
		{Index: 0, Timestamp: ts, RawText: "Delays on NWK-WTC. We apologize for the inconvenience."},
		{Index: 1, Timestamp: ts, RawText: "We regret the inconvenience."},
		{Index: 2, Timestamp: ts, RawText: ""},
		{Index: 3, Timestamp: ts, RawText: "HOB-33 on schedule."},
	}

	alerts := CleanStationAlerts(stations)

	assert.Equal(t, []Alert{
		{Index: 0, Timestamp: ts, Text: "Delays on NWK-WTC."},
		{Index: 3, Timestamp: ts, Text: "HOB-33 on schedule."},
	}, alerts)
}
