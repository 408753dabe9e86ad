package converter

import (
	"strings"
	"time"
)

// Bulletin timestamps look like "11/25/2025 11:21 PM"; some posts use a two-digit year.
var timestampLayouts = []string{
	"1/2/2006 3:04 PM",
	"1/2/06 3:04 PM",
}

// ResolveTimestamp parses the posted date and time of a station block.
//
// The wall-clock value is interpreted as UTC: the publisher's timezone is not
// applied. Any parse failure, including an empty date or time, returns fallback.
func ResolveTimestamp(date, clock string, fallback time.Time) time.Time {
	value := strings.ToUpper(date + " " + clock)
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil && t.Unix() >= 0 {
			return t
		}
	}
	return fallback
}
