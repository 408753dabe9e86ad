package converter

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var (
	stationSelector   = cascadia.MustCompile("div.station")
	dateTimeSelector  = cascadia.MustCompile("div.stationName table tr td strong span")
	alertTextSelector = cascadia.MustCompile("span.alertText")

	// The bulletin sometimes writes &quot without the terminating semicolon.
	quoteReplacer = strings.NewReplacer("&quot;", `"`, "&quot", `"`)
)

// ExtractStationAlerts parses the bulletin markup into one StationAlert per
// station block, in document order. Missing date, time or text nodes are read
// as empty strings; blocks are never skipped here.
func ExtractStationAlerts(content string, now time.Time) ([]StationAlert, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(quoteReplacer.Replace(content)))
	if err != nil {
		return nil, fmt.Errorf("converter: parse bulletin: %w", err)
	}

	stations := doc.FindMatcher(stationSelector)
	out := make([]StationAlert, 0, stations.Length())
	stations.Each(func(i int, station *goquery.Selection) {
		labels := station.FindMatcher(dateTimeSelector)
		date := selectionText(labels.Eq(0))
		clock := selectionText(labels.Eq(1))

		out = append(out, StationAlert{
			Index:     i,
			Timestamp: ResolveTimestamp(date, clock, now),
			RawText:   selectionText(station.FindMatcher(alertTextSelector).First()),
		})
	})
	return out, nil
}

// selectionText returns the text of s with outer whitespace trimmed; inner
// line breaks are kept so line-anchored cleanup still sees them.
func selectionText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
