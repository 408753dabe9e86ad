// Package formatter serializes GTFS-Realtime alert feeds.
//
// Feeds can be rendered as protobuf wire format (the GTFS-RT standard),
// protojson or prototext. WriteSummary prints a human readable table of
// the entities for the inspect command.
package formatter
