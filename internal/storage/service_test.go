package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
)

func TestService_SetGetDelete(t *testing.T) {
	s := NewService()

	s.Set(cluster.EntityUser, "alice", []byte(`{"username":"alice"}`))

	got, ok := s.Get(cluster.EntityUser, "alice")
	require.True(t, ok)
	require.JSONEq(t, `{"username":"alice"}`, string(got))

	// Entity maps are independent.
	_, ok = s.Get(cluster.EntityRide, "alice")
	require.False(t, ok)

	s.Delete(cluster.EntityUser, "alice")
	_, ok = s.Get(cluster.EntityUser, "alice")
	require.False(t, ok)
}

func TestService_ListPrefixAndFields(t *testing.T) {
	s := NewService()

	s.Set(cluster.EntityRide, "ride-1", []byte(`{"created_by":"alice","source":1,"destination":5}`))
	s.Set(cluster.EntityRide, "ride-2", []byte(`{"created_by":"bob","source":1,"destination":9}`))
	s.Set(cluster.EntityRide, "other-3", []byte(`{"created_by":"alice"}`))

	all := s.List(cluster.EntityRide, cluster.Filter{})
	require.Len(t, all, 3)

	byPrefix := s.List(cluster.EntityRide, cluster.Filter{Prefix: "ride-"})
	require.Len(t, byPrefix, 2)
	require.Equal(t, "ride-1", byPrefix[0].Key)
	require.Equal(t, "ride-2", byPrefix[1].Key)

	byField := s.List(cluster.EntityRide, cluster.Filter{
		Fields: []cluster.FieldMatch{{Path: "created_by", Value: "alice"}},
	})
	require.Len(t, byField, 2)

	both := s.List(cluster.EntityRide, cluster.Filter{
		Prefix: "ride-",
		Fields: []cluster.FieldMatch{{Path: "created_by", Value: "alice"}},
	})
	require.Len(t, both, 1)
	require.Equal(t, "ride-1", both[0].Key)

	numeric := s.List(cluster.EntityRide, cluster.Filter{
		Fields: []cluster.FieldMatch{{Path: "source", Value: "1"}, {Path: "destination", Value: "9"}},
	})
	require.Len(t, numeric, 1)
	require.Equal(t, "ride-2", numeric[0].Key)
}

func TestService_ApplyEntries(t *testing.T) {
	s := NewService()

	s.Apply(cluster.Entry{Entity: cluster.EntityUser, Kind: cluster.OpCreate, Key: "u1", Payload: []byte(`{"v":1}`)})
	s.Apply(cluster.Entry{Entity: cluster.EntityUser, Kind: cluster.OpUpdate, Key: "u1", Payload: []byte(`{"v":2}`)})

	got, ok := s.Get(cluster.EntityUser, "u1")
	require.True(t, ok)
	require.JSONEq(t, `{"v":2}`, string(got))

	s.Apply(cluster.Entry{Entity: cluster.EntityUser, Kind: cluster.OpDelete, Key: "u1"})
	_, ok = s.Get(cluster.EntityUser, "u1")
	require.False(t, ok)
}

func TestService_SnapshotRestore(t *testing.T) {
	s := NewService()
	for i := 0; i < 10; i++ {
		s.Set(cluster.EntityUser, fmt.Sprintf("u%d", i), []byte(fmt.Sprintf(`{"n":%d}`, i)))
		s.Set(cluster.EntityRide, fmt.Sprintf("r%d", i), []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}

	data, err := s.Snapshot()
	require.NoError(t, err)

	restored := NewService()
	restored.Set(cluster.EntityUser, "stale", []byte(`{}`))
	require.NoError(t, restored.Restore(data))

	require.Equal(t, 10, restored.Len(cluster.EntityUser))
	require.Equal(t, 10, restored.Len(cluster.EntityRide))

	_, ok := restored.Get(cluster.EntityUser, "stale")
	require.False(t, ok, "restore replaces pre-existing state")

	got, ok := restored.Get(cluster.EntityRide, "r7")
	require.True(t, ok)
	require.JSONEq(t, `{"n":7}`, string(got))
}
