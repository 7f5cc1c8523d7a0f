package cluster

import (
	"time"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
)

func EntryToProto(e Entry) *datatierpb.ReplicationEntry {
	return &datatierpb.ReplicationEntry{
		Sequence: e.Sequence,
		Entity:   datatierpb.EntityType(e.Entity),
		Kind:     datatierpb.OperationKind(e.Kind),
		Key:      e.Key,
		Payload:  e.Payload,
		Epoch:    e.Epoch,
		CommitTs: e.CommitTS.UnixNano(),
	}
}

func EntryFromProto(pb *datatierpb.ReplicationEntry) Entry {
	return Entry{
		Sequence: pb.GetSequence(),
		Entity:   EntityType(pb.GetEntity()),
		Kind:     OperationKind(pb.GetKind()),
		Key:      pb.GetKey(),
		Payload:  pb.GetPayload(),
		Epoch:    pb.GetEpoch(),
		CommitTS: time.Unix(0, pb.GetCommitTs()),
	}
}

func EntriesToProto(entries []Entry) []*datatierpb.ReplicationEntry {
	out := make([]*datatierpb.ReplicationEntry, len(entries))
	for i, e := range entries {
		out[i] = EntryToProto(e)
	}
	return out
}

func EntriesFromProto(pbs []*datatierpb.ReplicationEntry) []Entry {
	out := make([]Entry, len(pbs))
	for i, pb := range pbs {
		out[i] = EntryFromProto(pb)
	}
	return out
}

func FilterToProto(f Filter) *datatierpb.Filter {
	pb := &datatierpb.Filter{KeyPrefix: f.Prefix}
	for _, m := range f.Fields {
		pb.Fields = append(pb.Fields, &datatierpb.FieldMatch{Path: m.Path, Value: m.Value})
	}
	return pb
}

func FilterFromProto(pb *datatierpb.Filter) Filter {
	f := Filter{Prefix: pb.GetKeyPrefix()}
	for _, m := range pb.GetFields() {
		f.Fields = append(f.Fields, FieldMatch{Path: m.GetPath(), Value: m.GetValue()})
	}
	return f
}

func RecordsToProto(records []Record) []*datatierpb.Record {
	out := make([]*datatierpb.Record, len(records))
	for i, r := range records {
		out[i] = &datatierpb.Record{Key: r.Key, Payload: r.Payload}
	}
	return out
}

func RecordsFromProto(pbs []*datatierpb.Record) []Record {
	out := make([]Record, len(pbs))
	for i, pb := range pbs {
		out[i] = Record{Key: pb.GetKey(), Payload: pb.GetPayload()}
	}
	return out
}
