package node

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replication"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replog"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/storage"
)

func newTestNode(t *testing.T, id uint64) *Node {
	t.Helper()
	log, err := replog.Open(t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	repl := replication.NewChannel(replication.Config{Policy: replication.PolicyAsync})
	t.Cleanup(repl.Stop)

	return New(id, "127.0.0.1:0", storage.NewService(), log, repl)
}

func op(key, payload string) cluster.Operation {
	return cluster.Operation{
		Entity:  cluster.EntityUser,
		Kind:    cluster.OpCreate,
		Key:     key,
		Payload: []byte(payload),
	}
}

func replEntry(seq, epoch uint64, key string) cluster.Entry {
	return cluster.Entry{
		Sequence: seq,
		Entity:   cluster.EntityRide,
		Kind:     cluster.OpCreate,
		Key:      key,
		Payload:  []byte(`{"status":"requested"}`),
		Epoch:    epoch,
		CommitTS: time.Now().UTC(),
	}
}

func TestMasterWriteAssignsDenseSequences(t *testing.T) {
	n := newTestNode(t, 1)
	n.AssumeRole(cluster.RoleMaster, 1)

	for i := 1; i <= 3; i++ {
		seq, err := n.Write(context.Background(), 1, op("u1", `{"name":"a"}`))
		require.NoError(t, err)
		require.Equal(t, uint64(i), seq)
	}
	require.Equal(t, uint64(3), n.AppliedSeq())

	rec, err := n.Read(cluster.EntityUser, "u1")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a"}`, string(rec.Payload))
}

func TestWriteRejectsStaleEpoch(t *testing.T) {
	n := newTestNode(t, 1)
	n.AssumeRole(cluster.RoleMaster, 2)

	_, err := n.Write(context.Background(), 1, op("u1", `{}`))
	require.ErrorIs(t, err, cluster.ErrStaleEpoch)

	// A request from the future is just as invalid as one from the past.
	_, err = n.Write(context.Background(), 3, op("u1", `{}`))
	require.ErrorIs(t, err, cluster.ErrStaleEpoch)
}

func TestWriteOnSlaveFails(t *testing.T) {
	n := newTestNode(t, 2)
	n.AssumeRole(cluster.RoleSlave, 1)

	_, err := n.Write(context.Background(), 1, op("u1", `{}`))
	require.ErrorIs(t, err, cluster.ErrNotMaster)
}

func TestFenceStopsFormerMaster(t *testing.T) {
	n := newTestNode(t, 1)
	n.AssumeRole(cluster.RoleMaster, 1)

	_, err := n.Write(context.Background(), 1, op("u1", `{}`))
	require.NoError(t, err)

	n.Fence(2)
	require.Equal(t, cluster.RoleSlave, n.Role())

	_, err = n.Write(context.Background(), 1, op("u2", `{}`))
	require.ErrorIs(t, err, cluster.ErrNotMaster)
}

func TestReplicateAppliesInOrder(t *testing.T) {
	n := newTestNode(t, 2)
	n.AssumeRole(cluster.RoleSlave, 1)

	applied, err := n.Replicate(context.Background(), []cluster.Entry{
		replEntry(1, 1, "r1"),
		replEntry(2, 1, "r2"),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2), applied)

	_, err = n.Read(cluster.EntityRide, "r2")
	require.NoError(t, err)
}

func TestReplicateSkipsRedeliveredEntries(t *testing.T) {
	n := newTestNode(t, 2)
	n.AssumeRole(cluster.RoleSlave, 1)

	batch := []cluster.Entry{replEntry(1, 1, "r1"), replEntry(2, 1, "r2")}
	_, err := n.Replicate(context.Background(), batch)
	require.NoError(t, err)

	// Redelivery of the same batch must not double-apply or move the
	// watermark backwards.
	applied, err := n.Replicate(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, uint64(2), applied)
	require.Equal(t, uint64(2), n.AppliedSeq())
}

func TestReplicateRejectsFencedEpoch(t *testing.T) {
	n := newTestNode(t, 2)
	n.AssumeRole(cluster.RoleSlave, 3)

	_, err := n.Replicate(context.Background(), []cluster.Entry{replEntry(1, 2, "r1")})
	require.ErrorIs(t, err, cluster.ErrStaleEpoch)
}

type fakeFetcher struct {
	entries map[uint64]cluster.Entry
	calls   chan [2]uint64
}

func (f *fakeFetcher) FetchEntries(ctx context.Context, from, to uint64) ([]cluster.Entry, error) {
	f.calls <- [2]uint64{from, to}
	var out []cluster.Entry
	for seq := from; seq <= to; seq++ {
		if e, ok := f.entries[seq]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestReplicateFetchesGap(t *testing.T) {
	n := newTestNode(t, 2)
	n.AssumeRole(cluster.RoleSlave, 1)

	fetcher := &fakeFetcher{
		entries: map[uint64]cluster.Entry{2: replEntry(2, 1, "r2")},
		calls:   make(chan [2]uint64, 1),
	}
	n.SetFetcher(fetcher)

	_, err := n.Replicate(context.Background(), []cluster.Entry{replEntry(1, 1, "r1")})
	require.NoError(t, err)

	// Sequence 3 arrives while 2 is missing. It must be buffered, not
	// applied, and the missing range fetched from the master.
	applied, err := n.Replicate(context.Background(), []cluster.Entry{replEntry(3, 1, "r3")})
	require.NoError(t, err)
	require.Equal(t, uint64(1), applied)

	select {
	case call := <-fetcher.calls:
		require.Equal(t, [2]uint64{2, 2}, call)
	case <-time.After(2 * time.Second):
		t.Fatal("no gap fetch issued")
	}

	deadline := time.Now().Add(2 * time.Second)
	for n.AppliedSeq() != 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, uint64(3), n.AppliedSeq())

	_, err = n.Read(cluster.EntityRide, "r2")
	require.NoError(t, err)
}

func TestPromoteDrainsContiguousBufferAndDiscardsRest(t *testing.T) {
	n := newTestNode(t, 2)
	n.AssumeRole(cluster.RoleSlave, 1)

	_, err := n.Replicate(context.Background(), []cluster.Entry{replEntry(1, 1, "r1")})
	require.NoError(t, err)
	_, err = n.Replicate(context.Background(), []cluster.Entry{replEntry(2, 1, "r2")})
	require.NoError(t, err)
	_, err = n.Replicate(context.Background(), []cluster.Entry{replEntry(4, 1, "r4")})
	require.NoError(t, err)
	require.Equal(t, uint64(2), n.AppliedSeq())

	last, err := n.Promote(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), last)
	require.Equal(t, cluster.RoleMaster, n.Role())
	require.Equal(t, uint64(2), n.Epoch())

	// r4 sat past the gap and must not survive promotion.
	_, err = n.Read(cluster.EntityRide, "r4")
	require.ErrorIs(t, err, cluster.ErrNotFound)

	// The new master continues the sequence from its watermark.
	seq, err := n.Write(context.Background(), 2, op("u9", `{}`))
	require.NoError(t, err)
	require.Equal(t, uint64(3), seq)
}

func TestPromoteRejectsStaleTrigger(t *testing.T) {
	n := newTestNode(t, 2)
	n.AssumeRole(cluster.RoleSlave, 3)

	_, err := n.Promote(context.Background(), 3)
	require.ErrorIs(t, err, cluster.ErrStaleEpoch)
	require.Equal(t, cluster.RoleSlave, n.Role())
}

func TestRecoverFromLocalLog(t *testing.T) {
	dir := t.TempDir()
	log, err := replog.Open(dir, true)
	require.NoError(t, err)

	repl := replication.NewChannel(replication.Config{Policy: replication.PolicyAsync})
	n := New(1, "127.0.0.1:0", storage.NewService(), log, repl)
	n.AssumeRole(cluster.RoleMaster, 1)
	for i := 0; i < 3; i++ {
		_, err = n.Write(context.Background(), 1, op("u1", `{"v":1}`))
		require.NoError(t, err)
	}
	repl.Stop()
	require.NoError(t, log.Close())

	log2, err := replog.Open(dir, true)
	require.NoError(t, err)
	defer log2.Close()

	repl2 := replication.NewChannel(replication.Config{Policy: replication.PolicyAsync})
	defer repl2.Stop()

	restarted := New(1, "127.0.0.1:0", storage.NewService(), log2, repl2)
	require.Equal(t, uint64(3), restarted.AppliedSeq())
	require.Equal(t, uint64(1), restarted.Epoch())

	_, err = restarted.Read(cluster.EntityUser, "u1")
	require.NoError(t, err)
}

func TestAssumeRoleDuringReplication(t *testing.T) {
	n := newTestNode(t, 2)

	var wg sync.WaitGroup
	var replErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		for seq := uint64(1); seq <= 200; seq++ {
			if _, err := n.Replicate(context.Background(),
				[]cluster.Entry{replEntry(seq, 1, fmt.Sprintf("r%d", seq))}); err != nil {
				replErr = err
				return
			}
		}
	}()
	for i := 0; i < 50; i++ {
		n.AssumeRole(cluster.RoleSlave, 1)
	}
	wg.Wait()
	require.NoError(t, replErr)

	// Mastership picked up after the stream settles continues the sequence.
	n.AssumeRole(cluster.RoleMaster, 1)
	seq, err := n.Write(context.Background(), 1, op("after", `{}`))
	require.NoError(t, err)
	require.Equal(t, uint64(201), seq)
}

func TestRestartAfterPruneRequiresResync(t *testing.T) {
	dir := t.TempDir()
	log, err := replog.Open(dir, true)
	require.NoError(t, err)

	repl := replication.NewChannel(replication.Config{Policy: replication.PolicyAsync})
	master := New(1, "127.0.0.1:0", storage.NewService(), log, repl)
	master.AssumeRole(cluster.RoleMaster, 1)
	for i := 1; i <= 5; i++ {
		_, err = master.Write(context.Background(), 1, op(fmt.Sprintf("k%d", i), `{"v":1}`))
		require.NoError(t, err)
	}
	snap, snapSeq, snapEpoch, err := master.Snapshot()
	require.NoError(t, err)
	require.NoError(t, master.PruneLog(5))
	require.False(t, master.NeedsResync())
	repl.Stop()
	require.NoError(t, log.Close())

	log2, err := replog.Open(dir, true)
	require.NoError(t, err)
	defer log2.Close()
	repl2 := replication.NewChannel(replication.Config{Policy: replication.PolicyAsync})
	defer repl2.Stop()

	// The replayed suffix brings the watermark back to 5, but the store is
	// missing everything the prune dropped. The node must report that a
	// matching watermark alone does not prove a complete store.
	restarted := New(1, "127.0.0.1:0", storage.NewService(), log2, repl2)
	require.Equal(t, uint64(5), restarted.AppliedSeq())
	require.True(t, restarted.NeedsResync())
	_, err = restarted.Read(cluster.EntityUser, "k1")
	require.ErrorIs(t, err, cluster.ErrNotFound)

	require.NoError(t, restarted.Restore(snap, snapSeq, snapEpoch))
	require.False(t, restarted.NeedsResync())
	rec, err := restarted.Read(cluster.EntityUser, "k1")
	require.NoError(t, err)
	require.JSONEq(t, `{"v":1}`, string(rec.Payload))
}

func TestSnapshotRestore(t *testing.T) {
	master := newTestNode(t, 1)
	master.AssumeRole(cluster.RoleMaster, 2)
	_, err := master.Write(context.Background(), 2, op("u1", `{"name":"a"}`))
	require.NoError(t, err)

	data, appliedSeq, epoch, err := master.Snapshot()
	require.NoError(t, err)
	require.Equal(t, uint64(1), appliedSeq)
	require.Equal(t, uint64(2), epoch)

	joiner := newTestNode(t, 3)
	require.NoError(t, joiner.Restore(data, appliedSeq, epoch))
	require.Equal(t, uint64(1), joiner.AppliedSeq())

	rec, err := joiner.Read(cluster.EntityUser, "u1")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a"}`, string(rec.Payload))
}
