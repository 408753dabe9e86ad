// Package utils renders GTFS-RT epoch timestamps as RFC 3339 strings.
//
// The health endpoint reports the last refresh and the time the cached feed
// is next due (ValidUntilFrom); the formatter summary prints header and
// active_period times with the same helpers.
package utils
