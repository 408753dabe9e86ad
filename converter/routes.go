package converter

import (
	"strings"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

type routeAbbreviation struct {
	abbreviation string
	longName     string
}

// routeAbbreviations maps the line labels used in bulletin text to route_long_name values
var routeAbbreviations = []routeAbbreviation{
	{"NWK-WTC", "Newark - World Trade Center"},
	{"HOB-WTC", "Hoboken - World Trade Center"},
	{"JSQ-33", "Journal Square - 33rd Street"},
	{"HOB-33", "Hoboken - 33rd Street"},
}

// ResolveRouteIDs returns the route ids mentioned in text.
//
// For every known abbreviation contained in text, each reference route whose
// long name equals the mapped name contributes its id. Duplicates are kept.
// A nil ref or no match yields an empty result.
func ResolveRouteIDs(text string, ref ReferenceData) []string {
	if ref == nil {
		return nil
	}
	var ids []string
	for _, ra := range routeAbbreviations {
		if strings.Contains(text, ra.abbreviation) {
			ids = append(ids, ref.GetRouteIDsByLongName(ra.longName)...)
		}
	}
	return ids
}

// ResolveAgencyID returns the first reference agency's id, or fallback
func ResolveAgencyID(ref ReferenceData, fallback string) string {
	if ref != nil {
		if id := ref.GetAgencyID(); id != "" {
			return id
		}
	}
	return fallback
}

// InformedEntities builds the informed_entity list of an alert.
// Each resolved route becomes an agency+route selector; with no route a single
// agency-only selector marks the alert as applying to the whole agency.
func InformedEntities(text string, ref ReferenceData, fallbackAgency string) []*gtfsrtpb.EntitySelector {
	agencyID := ResolveAgencyID(ref, fallbackAgency)
	routeIDs := ResolveRouteIDs(text, ref)
	if len(routeIDs) == 0 {
		return []*gtfsrtpb.EntitySelector{{AgencyId: proto.String(agencyID)}}
	}
	selectors := make([]*gtfsrtpb.EntitySelector, 0, len(routeIDs))
	for _, id := range routeIDs {
		selectors = append(selectors, &gtfsrtpb.EntitySelector{
			AgencyId: proto.String(agencyID),
			RouteId:  proto.String(id),
		})
	}
	return selectors
}
