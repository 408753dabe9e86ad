// Package converter turns the PATH alert bulletin into a GTFS-Realtime alert feed.
//
// # Overview
//
// The bulletin is loosely structured HTML made of station blocks. Conversion runs
// synchronously in four steps:
//
//   - ExtractStationAlerts walks the markup and yields one StationAlert per
//     div.station block, resolving its posted date and time with ResolveTimestamp.
//   - CleanStationAlerts strips the boilerplate apology clause with NormalizeText and
//     drops blocks left without text.
//   - InformedEntities maps line labels such as "NWK-WTC" to route ids of the
//     reference GTFS dataset, or scopes the alert to the whole agency.
//   - BuildFeedMessage assembles a FULL_DATASET FeedMessage.
//
// # Usage
//
//	index, _ := gtfs.NewGTFSIndexFromPath("path-nj-us.zip")
//	feed, err := converter.ParseAlerts(bulletinHTML, index)
//
// Route resolution is optional; pass a nil ReferenceData to scope every alert to
// the agency:
//
//	feed, err := converter.ParseAlerts(bulletinHTML, nil)
//
// # Timestamps
//
// Posted times are read as UTC wall-clock values without applying the agency
// timezone. A block whose date or time does not parse gets the pipeline start time.
//
// # Entity ids
//
// Entity ids are "path_alert_" followed by the block's position in the document.
// Dropped blocks leave gaps; ids are never renumbered.
package converter
