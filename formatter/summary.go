package formatter

import (
	"fmt"
	"io"
	"strings"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/mattn/go-runewidth"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/utils"
)

const (
	idWidth          = 16
	startWidth       = 21
	scopeWidth       = 18
	descriptionWidth = 72
)

// WriteSummary prints one aligned row per alert entity
func WriteSummary(w io.Writer, fm *gtfsrtpb.FeedMessage) error {
	header := fm.GetHeader()
	if _, err := fmt.Fprintf(w, "feed timestamp %s, %d alert(s)\n\n",
		utils.Iso8601FromUnixSeconds(int64(header.GetTimestamp())), len(fm.GetEntity())); err != nil {
		return err
	}
	if err := writeRow(w, "ID", "START", "SCOPE", "DESCRIPTION"); err != nil {
		return err
	}
	for _, e := range fm.GetEntity() {
		alert := e.GetAlert()
		start := ""
		if periods := alert.GetActivePeriod(); len(periods) > 0 && periods[0].Start != nil {
			start = utils.Iso8601FromUnixSeconds(int64(periods[0].GetStart()))
		}
		if err := writeRow(w, e.GetId(), start, scope(alert), description(alert)); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, id, start, scope, desc string) error {
	_, err := fmt.Fprintf(w, "%s %s %s %s\n",
		cell(id, idWidth),
		cell(start, startWidth),
		cell(scope, scopeWidth),
		runewidth.Truncate(desc, descriptionWidth, "..."),
	)
	return err
}

func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}

// scope lists route ids, or the agency id for agency-wide alerts
func scope(alert *gtfsrtpb.Alert) string {
	var routes []string
	agency := ""
	for _, sel := range alert.GetInformedEntity() {
		if sel.RouteId != nil {
			routes = append(routes, sel.GetRouteId())
		} else if agency == "" {
			agency = sel.GetAgencyId()
		}
	}
	if len(routes) > 0 {
		return strings.Join(routes, ",")
	}
	if agency == "" {
		return "-"
	}
	return "agency " + agency
}

func description(alert *gtfsrtpb.Alert) string {
	translations := alert.GetDescriptionText().GetTranslation()
	if len(translations) == 0 {
		return ""
	}
	return translations[0].GetText()
}
