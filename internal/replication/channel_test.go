package replication

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
)

type fakePeer struct {
	id uint64

	mu      sync.Mutex
	entries []cluster.Entry
	applied uint64
	fail    bool
	block   chan struct{}
}

func (p *fakePeer) ID() uint64 { return p.id }

func (p *fakePeer) Replicate(ctx context.Context, entries []cluster.Entry) (uint64, error) {
	p.mu.Lock()
	block := p.block
	p.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return 0, context.DeadlineExceeded
	}
	p.entries = append(p.entries, entries...)
	for _, e := range entries {
		if e.Sequence > p.applied {
			p.applied = e.Sequence
		}
	}
	return p.applied, nil
}

func (p *fakePeer) received() []cluster.Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]cluster.Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

func entry(seq uint64) cluster.Entry {
	return cluster.Entry{
		Sequence: seq,
		Entity:   cluster.EntityUser,
		Kind:     cluster.OpCreate,
		Key:      "u1",
		Payload:  []byte(`{"name":"a"}`),
		Epoch:    1,
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.FailNow(t, "condition not met in time")
}

func TestAsyncCommitDeliversInOrder(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicyAsync})
	defer ch.Stop()

	peer := &fakePeer{id: 2}
	ch.AddPeer(peer)

	for seq := uint64(1); seq <= 5; seq++ {
		require.NoError(t, ch.Commit(context.Background(), entry(seq)))
	}

	waitFor(t, func() bool { return len(peer.received()) == 5 })
	got := peer.received()
	for i, e := range got {
		require.Equal(t, uint64(i+1), e.Sequence)
	}
}

func TestAsyncCommitWithFailingPeerDoesNotBlock(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicyAsync, AckTimeout: 50 * time.Millisecond})
	defer ch.Stop()

	peer := &fakePeer{id: 2, fail: true}
	ch.AddPeer(peer)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for seq := uint64(1); seq <= 10; seq++ {
			require.NoError(t, ch.Commit(context.Background(), entry(seq)))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async commit blocked on a failing peer")
	}
}

func TestSyncMajorityWaitsForQuorum(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicySyncMajority, AckTimeout: 2 * time.Second})
	defer ch.Stop()

	gate := make(chan struct{})
	fast1 := &fakePeer{id: 2}
	fast2 := &fakePeer{id: 3}
	slow := &fakePeer{id: 4, block: gate}
	defer close(gate)
	ch.AddPeer(fast1)
	ch.AddPeer(fast2)
	ch.AddPeer(slow)

	// Two of three peers acknowledge, which is a majority. The slow
	// peer must not hold the commit back.
	require.NoError(t, ch.Commit(context.Background(), entry(1)))
	require.Len(t, fast1.received(), 1)
	require.Len(t, fast2.received(), 1)
}

func TestSyncMajorityTimesOut(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicySyncMajority, AckTimeout: 50 * time.Millisecond})
	defer ch.Stop()

	gate := make(chan struct{})
	defer close(gate)
	ch.AddPeer(&fakePeer{id: 2, block: gate})
	ch.AddPeer(&fakePeer{id: 3, block: gate})

	err := ch.Commit(context.Background(), entry(1))
	require.ErrorIs(t, err, cluster.ErrReplicationTimeout)
}

func TestSyncMajorityWithoutPeersReturnsImmediately(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicySyncMajority, AckTimeout: 50 * time.Millisecond})
	defer ch.Stop()

	require.NoError(t, ch.Commit(context.Background(), entry(1)))
}

func TestAckedFloorTracksSlowestPeer(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicyAsync})
	defer ch.Stop()

	gate := make(chan struct{})
	fast := &fakePeer{id: 2}
	slow := &fakePeer{id: 3, block: gate}
	ch.AddPeer(fast)
	ch.AddPeer(slow)

	for seq := uint64(1); seq <= 3; seq++ {
		require.NoError(t, ch.Commit(context.Background(), entry(seq)))
	}
	waitFor(t, func() bool { return len(fast.received()) == 3 })
	require.Equal(t, uint64(0), ch.AckedFloor())

	close(gate)
	waitFor(t, func() bool { return ch.AckedFloor() == 3 })
}

func TestAckedFloorWithoutPeersEqualsLastCommit(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicyAsync})
	defer ch.Stop()

	require.NoError(t, ch.Commit(context.Background(), entry(7)))
	require.Equal(t, uint64(7), ch.AckedFloor())
}

func TestRemovePeerStopsDelivery(t *testing.T) {
	ch := NewChannel(Config{Policy: PolicyAsync})
	defer ch.Stop()

	peer := &fakePeer{id: 2}
	ch.AddPeer(peer)
	require.Equal(t, []uint64{2}, ch.PeerIDs())

	ch.RemovePeer(2)
	require.Empty(t, ch.PeerIDs())

	require.NoError(t, ch.Commit(context.Background(), entry(1)))
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, peer.received())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("async")
	require.NoError(t, err)
	require.Equal(t, PolicyAsync, p)

	p, err = ParsePolicy("sync-majority")
	require.NoError(t, err)
	require.Equal(t, PolicySyncMajority, p)

	_, err = ParsePolicy("paxos")
	require.Error(t, err)
}
