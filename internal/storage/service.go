// Package storage is the per-node record store: the state a master mutates
// on commit and a slave mutates by applying replicated entries.
package storage

import (
	"fmt"

	"github.com/tidwall/gjson"
	"google.golang.org/protobuf/proto"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
)

type Service struct {
	store *Store
}

func NewService() *Service {
	return &Service{store: NewStore()}
}

func (s *Service) Get(entity cluster.EntityType, key string) ([]byte, bool) {
	metrics.StorageOperationsTotal.WithLabelValues("get").Inc()
	return s.store.Get(entity, key)
}

func (s *Service) Set(entity cluster.EntityType, key string, payload []byte) {
	metrics.StorageOperationsTotal.WithLabelValues("set").Inc()
	s.store.Set(entity, key, payload)
	metrics.StorageKeysTotal.WithLabelValues(entity.String()).Set(float64(s.store.Len(entity)))
}

func (s *Service) Delete(entity cluster.EntityType, key string) {
	metrics.StorageOperationsTotal.WithLabelValues("delete").Inc()
	s.store.Delete(entity, key)
	metrics.StorageKeysTotal.WithLabelValues(entity.String()).Set(float64(s.store.Len(entity)))
}

func (s *Service) Len(entity cluster.EntityType) int {
	return s.store.Len(entity)
}

// List returns records matching the filter. JSON payload fields are
// compared with gjson, so filter paths may address nested fields.
func (s *Service) List(entity cluster.EntityType, filter cluster.Filter) []cluster.Record {
	metrics.StorageOperationsTotal.WithLabelValues("list").Inc()

	records := s.store.Scan(entity, filter.Prefix)
	if len(filter.Fields) == 0 {
		return records
	}

	matched := records[:0]
	for _, r := range records {
		if matchFields(r.Payload, filter.Fields) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchFields(payload []byte, fields []cluster.FieldMatch) bool {
	for _, f := range fields {
		v := gjson.GetBytes(payload, f.Path)
		if !v.Exists() || v.String() != f.Value {
			return false
		}
	}
	return true
}

// Apply mutates the store according to a replicated entry.
func (s *Service) Apply(e cluster.Entry) {
	switch e.Kind {
	case cluster.OpCreate, cluster.OpUpdate:
		s.Set(e.Entity, e.Key, e.Payload)
	case cluster.OpDelete:
		s.Delete(e.Entity, e.Key)
	}
}

// Snapshot serializes the full store for slave resynchronization.
func (s *Service) Snapshot() ([]byte, error) {
	data := s.store.Data()

	snap := &datatierpb.StoreSnapshot{}
	for e, m := range data {
		for k, v := range m {
			snap.Records = append(snap.Records, &datatierpb.SnapshotRecord{
				Entity:  datatierpb.EntityType(e),
				Key:     k,
				Payload: v,
			})
		}
	}

	return proto.Marshal(snap)
}

func (s *Service) Restore(data []byte) error {
	var snap datatierpb.StoreSnapshot
	if err := proto.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}

	fresh := make(map[cluster.EntityType]map[string][]byte)
	for _, r := range snap.Records {
		entity := cluster.EntityType(r.Entity)
		if fresh[entity] == nil {
			fresh[entity] = make(map[string][]byte)
		}
		fresh[entity][r.Key] = r.Payload
	}

	s.store.Replace(fresh)
	for _, e := range cluster.EntityTypes() {
		metrics.StorageKeysTotal.WithLabelValues(e.String()).Set(float64(s.store.Len(e)))
	}
	return nil
}
