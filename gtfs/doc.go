/*
Package gtfs provides the static GTFS reference data used to scope alerts.

Only two projections of a GTFS archive are consumed: routes.txt (route_id,
route_short_name, route_long_name, route_type) and agency.txt (agency_id,
agency_name, agency_timezone). Rows are kept in file order.

# Basic Usage

Load from raw bytes:

	index, err := gtfs.NewGTFSIndexFromBytes(gtfsZipBytes)
	if err != nil {
	    log.Fatal(err)
	}
	ids := index.GetRouteIDsByLongName("Newark - World Trade Center")

Load from a local file or a URL:

	index, err := gtfs.NewGTFSIndexFromPath("path-nj-us.zip")
	index, err := gtfs.NewGTFSIndexFromURL(ctx, "http://data.trilliumtransit.com/gtfs/path-nj-us/path-nj-us.zip")

# Nil index

Every accessor accepts a nil *GTFSIndex and behaves as if the dataset were
empty. The converter relies on this to fall back to agency-wide scope when no
reference data is supplied.

# Caching

Parse the archive once at startup. SerializeIndexToFile and
DeserializeIndexFromFile persist the parsed index with encoding/gob;
NewGTFSIndexFromConfig uses them when gtfs.cachePath is configured.
*/
package gtfs
