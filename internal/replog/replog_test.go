package replog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
)

func entry(seq uint64) cluster.Entry {
	return cluster.Entry{
		Sequence: seq,
		Entity:   cluster.EntityRide,
		Kind:     cluster.OpCreate,
		Key:      fmt.Sprintf("ride-%d", seq),
		Payload:  []byte(fmt.Sprintf(`{"seq":%d}`, seq)),
		Epoch:    1,
		CommitTS: time.Now(),
	}
}

func TestLog_AppendRead(t *testing.T) {
	l, err := Open(t.TempDir(), true)
	require.NoError(t, err)
	defer l.Close()

	for seq := uint64(1); seq <= 5; seq++ {
		require.NoError(t, l.Append(entry(seq)))
	}

	require.Equal(t, uint64(1), l.FirstSeq())
	require.Equal(t, uint64(5), l.LastSeq())

	got, err := l.Read(3)
	require.NoError(t, err)
	require.Equal(t, uint64(3), got.Sequence)
	require.Equal(t, "ride-3", got.Key)
	require.Equal(t, cluster.EntityRide, got.Entity)

	_, err = l.Read(9)
	require.ErrorIs(t, err, ErrSeqNotFound)
}

func TestLog_Range(t *testing.T) {
	l, err := Open(t.TempDir(), true)
	require.NoError(t, err)
	defer l.Close()

	for seq := uint64(1); seq <= 10; seq++ {
		require.NoError(t, l.Append(entry(seq)))
	}

	entries, err := l.Range(4, 7)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	require.Equal(t, uint64(4), entries[0].Sequence)
	require.Equal(t, uint64(7), entries[3].Sequence)
}

func TestLog_ReplayAfterReopen(t *testing.T) {
	dir := t.TempDir()

	l, err := Open(dir, true)
	require.NoError(t, err)
	for seq := uint64(1); seq <= 4; seq++ {
		require.NoError(t, l.Append(entry(seq)))
	}
	require.NoError(t, l.Close())

	reopened, err := Open(dir, true)
	require.NoError(t, err)
	defer reopened.Close()

	require.Equal(t, uint64(4), reopened.LastSeq())
	got, err := reopened.Read(2)
	require.NoError(t, err)
	require.Equal(t, "ride-2", got.Key)

	// Appends continue after the replayed tail.
	require.NoError(t, reopened.Append(entry(5)))
	require.Equal(t, uint64(5), reopened.LastSeq())
}

func TestLog_StartsMidStream(t *testing.T) {
	// A node resynced from a snapshot first sees sequence 42.
	l, err := Open(t.TempDir(), true)
	require.NoError(t, err)
	defer l.Close()

	for seq := uint64(42); seq <= 45; seq++ {
		require.NoError(t, l.Append(entry(seq)))
	}

	require.Equal(t, uint64(42), l.FirstSeq())
	got, err := l.Read(44)
	require.NoError(t, err)
	require.Equal(t, uint64(44), got.Sequence)
}

func TestLog_TruncateFront(t *testing.T) {
	l, err := Open(t.TempDir(), true)
	require.NoError(t, err)
	defer l.Close()

	for seq := uint64(1); seq <= 10; seq++ {
		require.NoError(t, l.Append(entry(seq)))
	}

	require.NoError(t, l.TruncateFront(6))
	require.Equal(t, uint64(6), l.FirstSeq())

	_, err = l.Read(5)
	require.ErrorIs(t, err, ErrSeqNotFound)

	got, err := l.Read(6)
	require.NoError(t, err)
	require.Equal(t, uint64(6), got.Sequence)

	// Truncating behind the current front is a no-op.
	require.NoError(t, l.TruncateFront(3))
	require.Equal(t, uint64(6), l.FirstSeq())
}
