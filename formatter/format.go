package formatter

import (
	"errors"
	"fmt"
	"strings"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// Format selects a feed serialization
type Format string

const (
	FormatProtobuf Format = "pb"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
)

// ErrUnknownFormat is returned for a format name outside pb, json and text
var ErrUnknownFormat = errors.New("formatter: unknown format")

// Formats lists the supported formats in preference order
var Formats = []Format{FormatProtobuf, FormatJSON, FormatText}

// ParseFormat maps a user supplied name to a Format. Empty means protobuf.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pb", "proto", "protobuf":
		return FormatProtobuf, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType returns the HTTP content type for f
func ContentType(f Format) string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/x-protobuf"
	}
}

// Marshal serializes fm in format f
func Marshal(fm *gtfsrtpb.FeedMessage, f Format) ([]byte, error) {
	switch f {
	case FormatProtobuf:
		return proto.Marshal(fm)
	case FormatJSON:
		return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(fm)
	case FormatText:
		return prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(fm)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
