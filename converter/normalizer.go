package converter

import (
	"regexp"
	"strings"
)

// apologyPattern matches the boilerplate closing of a bulletin post, e.g.
// "We apologize for the inconvenience this may have caused." through end of line.
var apologyPattern = regexp.MustCompile(`We (apologize|regret) (for )?(the|this|any)?( )?(inconvenience)( )?(this )?(may )?(have|has)?( )?(caused)?(.*\.?)`)

// NormalizeText removes the first boilerplate apology clause and trims the result.
// An empty return value means the text carried no rider-facing content.
func NormalizeText(text string) string {
	if loc := apologyPattern.FindStringIndex(text); loc != nil {
		text = text[:loc[0]] + text[loc[1]:]
	}
	return strings.TrimSpace(text)
}

// CleanStationAlerts normalizes every station alert and drops the ones left empty.
// Indices are carried over untouched.
func CleanStationAlerts(stations []StationAlert) []Alert {
	alerts := make([]Alert, 0, len(stations))
	for _, s := range stations {
		text := NormalizeText(s.RawText)
		if text == "" {
			continue
		}
		alerts = append(alerts, Alert{
			Index:     s.Index,
			Timestamp: s.Timestamp,
			Text:      text,
		})
	}
	return alerts
}
