// Package tracking keeps the last published alert set and reports what
// changed between refreshes.
//
// A Snapshot captures the entity ids and description texts of one feed.
// Tracker compares each newly observed feed with the previous snapshot and
// returns the added, removed and updated entity ids. Feeds older than the
// current snapshot are ignored.
package tracking
