package storage

import (
	"sort"
	"strings"
	"sync"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
)

// Store keeps one record map per entity type. Reads take the shared lock
// only long enough to snapshot matching records; writers never starve them.
type Store struct {
	mu   sync.RWMutex
	data map[cluster.EntityType]map[string][]byte
}

func NewStore() *Store {
	data := make(map[cluster.EntityType]map[string][]byte, len(cluster.EntityTypes()))
	for _, e := range cluster.EntityTypes() {
		data[e] = make(map[string][]byte)
	}
	return &Store{data: data}
}

func (s *Store) Set(entity cluster.EntityType, key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[entity][key] = payload
}

func (s *Store) Get(entity cluster.EntityType, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[entity][key]
	return v, ok
}

func (s *Store) Delete(entity cluster.EntityType, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data[entity], key)
}

func (s *Store) Len(entity cluster.EntityType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[entity])
}

// Scan returns records under the key prefix in key order. Payload slices
// are shared with the store and must not be mutated by callers.
func (s *Store) Scan(entity cluster.EntityType, prefix string) []cluster.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]cluster.Record, 0)
	for k, v := range s.data[entity] {
		if prefix != "" && !strings.HasPrefix(k, prefix) {
			continue
		}
		records = append(records, cluster.Record{Key: k, Payload: v})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records
}

// Data returns a deep copy of every entity map.
func (s *Store) Data() map[cluster.EntityType]map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[cluster.EntityType]map[string][]byte, len(s.data))
	for e, m := range s.data {
		cp := make(map[string][]byte, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out[e] = cp
	}
	return out
}

// Replace swaps in a full data set, typically restored from a snapshot.
func (s *Store) Replace(data map[cluster.EntityType]map[string][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make(map[cluster.EntityType]map[string][]byte, len(cluster.EntityTypes()))
	for _, e := range cluster.EntityTypes() {
		fresh[e] = make(map[string][]byte)
	}
	for e, m := range data {
		for k, v := range m {
			fresh[e][k] = v
		}
	}
	s.data = fresh
}
