package converter

import (
	"fmt"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/gtfs"
)

// stationBlock renders one bulletin station block the way the PATH app content does
func stationBlock(date, clock, text string) string {
	var b strings.Builder
	b.WriteString(`<div class="station"><div class="stationName"><table><tr>`)
	if date != "" {
		fmt.Fprintf(&b, `<td><strong><span>%s</span></strong></td>`, date)
	}
	if clock != "" {
		fmt.Fprintf(&b, `<td><strong><span>%s</span></strong></td>`, clock)
	}
	b.WriteString(`</tr></table></div>`)
	if text != "" {
		fmt.Fprintf(&b, `<span class="alertText">%s</span>`, text)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func bulletin(blocks ...string) string {
	return `<html><body><div class="alerts">` + strings.Join(blocks, "\n") + `</div></body></html>`
}

func pathIndex(routes ...gtfs.Route) *gtfs.GTFSIndex {
	idx := gtfs.NewGTFSIndex()
	idx.AddAgency(gtfs.Agency{ID: "151", Name: "Port Authority Trans-Hudson Corporation", Timezone: "America/New_York"})
	for _, r := range routes {
		idx.AddRoute(r)
	}
	return idx
}

var testNow = time.Date(2025, time.November, 26, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }
