package converter

import (
	"strconv"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// EntityID returns the feed entity id of the station block at index
func EntityID(index int) string {
	return EntityIDPrefix + strconv.Itoa(index)
}

// BuildFeedEntity turns a cleaned alert into a GTFS-RT alert entity
func BuildFeedEntity(a Alert, ref ReferenceData, opts Options) *gtfsrtpb.FeedEntity {
	return &gtfsrtpb.FeedEntity{
		Id: proto.String(EntityID(a.Index)),
		Alert: &gtfsrtpb.Alert{
			ActivePeriod: []*gtfsrtpb.TimeRange{
				{Start: proto.Uint64(uint64(a.Timestamp.Unix()))},
			},
			InformedEntity: InformedEntities(a.Text, ref, opts.agencyID()),
			Cause:          gtfsrtpb.Alert_UNKNOWN_CAUSE.Enum(),
			Effect:         gtfsrtpb.Alert_UNKNOWN_EFFECT.Enum(),
			DescriptionText: &gtfsrtpb.TranslatedString{
				Translation: []*gtfsrtpb.TranslatedString_Translation{
					{Text: proto.String(a.Text), Language: proto.String(opts.language())},
				},
			},
		},
	}
}

// BuildFeedMessage wraps the alerts, in order, in a full-dataset feed stamped with now
func BuildFeedMessage(alerts []Alert, ref ReferenceData, now time.Time, opts Options) *gtfsrtpb.FeedMessage {
	entities := make([]*gtfsrtpb.FeedEntity, 0, len(alerts))
	for _, a := range alerts {
		entities = append(entities, BuildFeedEntity(a, ref, opts))
	}
	header := &gtfsrtpb.FeedHeader{
		GtfsRealtimeVersion: proto.String(RealtimeVersion),
		Incrementality:      gtfsrtpb.FeedHeader_FULL_DATASET.Enum(),
		Timestamp:           proto.Uint64(uint64(now.Unix())),
	}
	setHeaderFeedVersion(header, FeedVersion)
	return &gtfsrtpb.FeedMessage{
		Header: header,
		Entity: entities,
	}
}

// feed_version is field 4 of FeedHeader. Bindings that predate it carry the
// value in the header's unknown fields, which proto.Marshal writes verbatim.
const (
	feedVersionField  protoreflect.Name = "feed_version"
	feedVersionNumber protowire.Number  = 4
)

func feedVersionDescriptor(m protoreflect.Message) protoreflect.FieldDescriptor {
	fd := m.Descriptor().Fields().ByName(feedVersionField)
	if fd == nil || fd.Kind() != protoreflect.StringKind {
		return nil
	}
	return fd
}

func setHeaderFeedVersion(h *gtfsrtpb.FeedHeader, version string) {
	m := h.ProtoReflect()
	if fd := feedVersionDescriptor(m); fd != nil {
		m.Set(fd, protoreflect.ValueOfString(version))
		return
	}
	raw := stripUnknownField(m.GetUnknown(), feedVersionNumber)
	raw = protowire.AppendTag(raw, feedVersionNumber, protowire.BytesType)
	raw = protowire.AppendString(raw, version)
	m.SetUnknown(raw)
}

// HeaderFeedVersion returns header.feed_version, or "" when unset
func HeaderFeedVersion(h *gtfsrtpb.FeedHeader) string {
	if h == nil {
		return ""
	}
	m := h.ProtoReflect()
	if fd := feedVersionDescriptor(m); fd != nil {
		if !m.Has(fd) {
			return ""
		}
		return m.Get(fd).String()
	}
	var version string
	raw := m.GetUnknown()
	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return version
		}
		raw = raw[n:]
		if num == feedVersionNumber && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(raw)
			if n < 0 {
				return version
			}
			version = v
			raw = raw[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, raw)
		if n < 0 {
			return version
		}
		raw = raw[n:]
	}
	return version
}

// stripUnknownField drops every occurrence of field num from raw
func stripUnknownField(raw protoreflect.RawFields, num protowire.Number) protoreflect.RawFields {
	var out protoreflect.RawFields
	for len(raw) > 0 {
		n0, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return out
		}
		m := protowire.ConsumeFieldValue(n0, typ, raw[n:])
		if m < 0 {
			return out
		}
		if n0 != num {
			out = append(out, raw[:n+m]...)
		}
		raw = raw[n+m:]
	}
	return out
}
