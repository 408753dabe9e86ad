// Package pathalerts publishes PATH service alerts as a GTFS-Realtime feed.
//
// FetchAlerts pulls the alert bulletin and converts it in one call. For a
// long running service, FeedCache holds the latest converted feed, Refresher
// keeps it current and Server exposes it over HTTP:
//
//	GET /api/health
//	GET /api/gtfsrt/alerts.pb
//	GET /api/gtfsrt/alerts.json
//	GET /api/gtfsrt/alerts.txt
//	GET /api/gtfsrt/alerts?format=pb|json|text
package pathalerts
