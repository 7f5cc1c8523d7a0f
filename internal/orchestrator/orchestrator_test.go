package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/counter"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/health"
)

// fakeNode stands in for a gRPC node client. Everything is recorded so
// tests can assert on the exact calls the orchestrator makes.
type fakeNode struct {
	id uint64

	mu            sync.Mutex
	down          bool
	appliedSeq    uint64
	epoch         uint64
	role          cluster.Role
	writes        []cluster.Operation
	writeEpochs   []uint64
	reads         []string
	promoteCalls  []uint64
	announces     []uint64
	addedPeers    []uint64
	removedPeers  []uint64
	promoteFailed bool
}

var errNodeDown = errors.New("connection refused")

func (f *fakeNode) Write(ctx context.Context, epoch uint64, op cluster.Operation) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return 0, errNodeDown
	}
	f.writes = append(f.writes, op)
	f.writeEpochs = append(f.writeEpochs, epoch)
	f.appliedSeq++
	return f.appliedSeq, nil
}

func (f *fakeNode) Read(ctx context.Context, entity cluster.EntityType, key string) (cluster.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return cluster.Record{}, errNodeDown
	}
	f.reads = append(f.reads, key)
	return cluster.Record{Key: key, Payload: []byte(`{}`)}, nil
}

func (f *fakeNode) List(ctx context.Context, entity cluster.EntityType, filter cluster.Filter) ([]cluster.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, errNodeDown
	}
	return nil, nil
}

func (f *fakeNode) Probe(ctx context.Context) (uint64, cluster.Role, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return 0, 0, 0, errNodeDown
	}
	return f.appliedSeq, f.role, f.epoch, nil
}

func (f *fakeNode) Promote(ctx context.Context, newEpoch uint64) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promoteCalls = append(f.promoteCalls, newEpoch)
	if f.down || f.promoteFailed {
		return 0, errNodeDown
	}
	f.role = cluster.RoleMaster
	f.epoch = newEpoch
	return f.appliedSeq, nil
}

func (f *fakeNode) AnnounceEpoch(ctx context.Context, epoch, masterID uint64, masterAddr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.announces = append(f.announces, epoch)
	return nil
}

func (f *fakeNode) AddPeer(ctx context.Context, peerID uint64, addr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addedPeers = append(f.addedPeers, peerID)
	return nil
}

func (f *fakeNode) RemovePeer(ctx context.Context, peerID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removedPeers = append(f.removedPeers, peerID)
	return nil
}

func (f *fakeNode) Close() error { return nil }

func (f *fakeNode) setDown(down bool) {
	f.mu.Lock()
	f.down = down
	f.mu.Unlock()
}

func (f *fakeNode) setApplied(seq uint64) {
	f.mu.Lock()
	f.appliedSeq = seq
	f.mu.Unlock()
}

type fixture struct {
	orch  *Orchestrator
	nodes map[string]*fakeNode
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{nodes: make(map[string]*fakeNode)}
	dial := func(addr string) (NodeClient, error) {
		n, ok := f.nodes[addr]
		if !ok {
			return nil, errNodeDown
		}
		return n, nil
	}
	f.orch = New(Config{
		Health: health.Config{
			HeartbeatInterval:  20 * time.Millisecond,
			SuspicionThreshold: 2,
			ProbeTimeout:       200 * time.Millisecond,
		},
		CallTimeout: time.Second,
	}, dial, counter.NewRegistry())
	f.orch.Start()
	t.Cleanup(f.orch.Stop)
	return f
}

func (f *fixture) addNode(t *testing.T, id uint64, appliedSeq uint64) *fakeNode {
	t.Helper()
	addr := string(rune('a'+id)) + ":7000"
	n := &fakeNode{id: id, appliedSeq: appliedSeq}
	f.nodes[addr] = n

	role, epoch, _, _, err := f.orch.Register(context.Background(), id, addr)
	require.NoError(t, err)
	n.mu.Lock()
	n.epoch = epoch
	n.role = role
	n.mu.Unlock()

	// One heartbeat so the routing table knows the node's watermark.
	_, err = f.orch.Heartbeat(id, appliedSeq, role)
	require.NoError(t, err)
	return n
}

func waitRoute(t *testing.T, o *Orchestrator, cond func(cluster.RouteSnapshot) bool) cluster.RouteSnapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if r := o.Route(); cond(r) {
			return r
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("routing table never reached expected state: %+v", o.Route())
	return cluster.RouteSnapshot{}
}

func TestFirstRegistrationSeatsMaster(t *testing.T) {
	f := newFixture(t)
	f.addNode(t, 1, 0)

	r := f.orch.Route()
	require.Equal(t, uint64(1), r.MasterID)
	require.Equal(t, uint64(1), r.Epoch)
}

func TestLaterRegistrationsJoinAsSlaves(t *testing.T) {
	f := newFixture(t)
	master := f.addNode(t, 1, 0)
	f.addNode(t, 2, 0)

	require.Equal(t, uint64(1), f.orch.Route().MasterID)

	master.mu.Lock()
	defer master.mu.Unlock()
	require.Equal(t, []uint64{2}, master.addedPeers)
}

func TestRouteWriteGoesToMasterWithCurrentEpoch(t *testing.T) {
	f := newFixture(t)
	master := f.addNode(t, 1, 0)
	slave := f.addNode(t, 2, 0)

	seq, epoch, err := f.orch.RouteWrite(context.Background(), cluster.Operation{
		Entity:  cluster.EntityUser,
		Kind:    cluster.OpCreate,
		Key:     "u1",
		Payload: []byte(`{}`),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), seq)
	require.Equal(t, uint64(1), epoch)

	master.mu.Lock()
	require.Len(t, master.writes, 1)
	require.Equal(t, []uint64{1}, master.writeEpochs)
	master.mu.Unlock()

	slave.mu.Lock()
	require.Empty(t, slave.writes)
	slave.mu.Unlock()
}

func TestRouteReadPrefersFreshestSlave(t *testing.T) {
	f := newFixture(t)
	master := f.addNode(t, 1, 10)
	f.addNode(t, 2, 8)
	fresh := f.addNode(t, 3, 10)

	_, _, err := f.orch.RouteRead(context.Background(), cluster.EntityUser, "u1")
	require.NoError(t, err)

	fresh.mu.Lock()
	require.Equal(t, []string{"u1"}, fresh.reads)
	fresh.mu.Unlock()

	master.mu.Lock()
	require.Empty(t, master.reads)
	master.mu.Unlock()
}

func TestRouteReadFallsBackToMaster(t *testing.T) {
	f := newFixture(t)
	master := f.addNode(t, 1, 5)

	_, _, err := f.orch.RouteRead(context.Background(), cluster.EntityRide, "r1")
	require.NoError(t, err)

	master.mu.Lock()
	require.Equal(t, []string{"r1"}, master.reads)
	master.mu.Unlock()
}

func TestMasterDeathPromotesFreshestSlave(t *testing.T) {
	f := newFixture(t)
	master := f.addNode(t, 1, 8)
	b := f.addNode(t, 2, 9)
	c := f.addNode(t, 3, 9)

	master.setDown(true)

	// B and C are tied on watermark; the lower id wins.
	r := waitRoute(t, f.orch, func(r cluster.RouteSnapshot) bool { return r.MasterID == 2 })
	require.Equal(t, uint64(2), r.Epoch)

	b.mu.Lock()
	require.Equal(t, []uint64{2}, b.promoteCalls)
	require.Contains(t, b.addedPeers, uint64(3))
	b.mu.Unlock()

	c.mu.Lock()
	require.Equal(t, []uint64{2}, c.announces)
	require.Empty(t, c.promoteCalls)
	c.mu.Unlock()

	// Writes resume against the new master under the new epoch.
	_, epoch, err := f.orch.RouteWrite(context.Background(), cluster.Operation{
		Entity: cluster.EntityUser, Kind: cluster.OpCreate, Key: "u1", Payload: []byte(`{}`),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2), epoch)
	b.mu.Lock()
	require.Equal(t, []uint64{2}, b.writeEpochs)
	b.mu.Unlock()
}

func TestStalePromotionTriggerIsDiscarded(t *testing.T) {
	f := newFixture(t)
	master := f.addNode(t, 1, 0)
	b := f.addNode(t, 2, 5)

	master.setDown(true)
	waitRoute(t, f.orch, func(r cluster.RouteSnapshot) bool { return r.MasterID == 2 })

	// A delayed trigger for the same death must not promote again.
	f.orch.promote(1)

	r := f.orch.Route()
	require.Equal(t, uint64(2), r.MasterID)
	require.Equal(t, uint64(2), r.Epoch)

	b.mu.Lock()
	require.Equal(t, []uint64{2}, b.promoteCalls)
	b.mu.Unlock()
}

func TestDeadSlaveLeavesReadRouting(t *testing.T) {
	f := newFixture(t)
	master := f.addNode(t, 1, 10)
	slave := f.addNode(t, 2, 10)

	slave.setDown(true)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		master.mu.Lock()
		removed := len(master.removedPeers) > 0
		master.mu.Unlock()
		if removed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	master.mu.Lock()
	require.Equal(t, []uint64{2}, master.removedPeers)
	master.mu.Unlock()

	// Reads fall back to the master now.
	_, _, err := f.orch.RouteRead(context.Background(), cluster.EntityUser, "u1")
	require.NoError(t, err)
	master.mu.Lock()
	require.Equal(t, []string{"u1"}, master.reads)
	master.mu.Unlock()
}

func TestTotalCollapseAndReRegistration(t *testing.T) {
	f := newFixture(t)
	only := f.addNode(t, 1, 3)

	only.setDown(true)
	waitRoute(t, f.orch, func(r cluster.RouteSnapshot) bool { return r.MasterID == 0 })

	_, _, err := f.orch.RouteWrite(context.Background(), cluster.Operation{
		Entity: cluster.EntityUser, Kind: cluster.OpCreate, Key: "u1", Payload: []byte(`{}`),
	})
	require.ErrorIs(t, err, cluster.ErrNoAvailableMaster)

	// The node comes back and re-registers. It is seated as master under
	// a fresh epoch so anything from the old one stays fenced out.
	only.setDown(false)
	role, epoch, _, _, err := f.orch.Register(context.Background(), 1, "b:7000")
	require.NoError(t, err)
	require.Equal(t, cluster.RoleMaster, role)
	require.Equal(t, uint64(2), epoch)
}

func TestRequestCountersTrackRoutedCalls(t *testing.T) {
	f := newFixture(t)
	f.addNode(t, 1, 0)

	op := cluster.Operation{Entity: cluster.EntityUser, Kind: cluster.OpCreate, Key: "u1", Payload: []byte(`{}`)}
	_, _, err := f.orch.RouteWrite(context.Background(), op)
	require.NoError(t, err)
	_, _, err = f.orch.RouteRead(context.Background(), cluster.EntityUser, "u1")
	require.NoError(t, err)
	_, _, _ = f.orch.RouteList(context.Background(), cluster.EntityRide, cluster.Filter{})

	users, err := f.orch.Count(cluster.EntityUser)
	require.NoError(t, err)
	require.Equal(t, uint64(2), users)

	rides, err := f.orch.Count(cluster.EntityRide)
	require.NoError(t, err)
	require.Equal(t, uint64(1), rides)

	require.NoError(t, f.orch.ResetCount(cluster.EntityUser))
	users, err = f.orch.Count(cluster.EntityUser)
	require.NoError(t, err)
	require.Equal(t, uint64(0), users)
}

func TestHeartbeatFromUnknownNodeFails(t *testing.T) {
	f := newFixture(t)
	_, err := f.orch.Heartbeat(99, 0, cluster.RoleSlave)
	require.ErrorIs(t, err, cluster.ErrUnknownNode)
}
