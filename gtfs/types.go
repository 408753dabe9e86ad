package gtfs

// Route is the projection of a routes.txt row used for alert scoping
type Route struct {
	ID        string
	ShortName string
	LongName  string // empty when route_long_name is absent
	Type      int
}

// Agency is the projection of an agency.txt row
type Agency struct {
	ID       string // empty when agency_id is absent (single-agency feeds)
	Name     string
	Timezone string
}
