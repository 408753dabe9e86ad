package utils

import (
	"time"
)

// Iso8601Now returns the current UTC time in RFC 3339 form
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromUnixSeconds renders a feed timestamp (header timestamp or
// active_period start) as RFC 3339 UTC for the health payload and feed summaries
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// ValidUntilFrom returns when a feed built at baseEpoch is due for refresh:
// one read interval later, in RFC 3339 UTC. It returns "" when either is unset.
func ValidUntilFrom(baseEpoch int64, readIntervalMS int) string {
	if baseEpoch <= 0 || readIntervalMS <= 0 {
		return ""
	}
	return time.Unix(baseEpoch+int64(readIntervalMS/1000), 0).UTC().Format(time.RFC3339)
}
