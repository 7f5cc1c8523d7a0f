package health

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
)

type fakeProber struct {
	mu    sync.Mutex
	fail  map[uint64]bool
	block chan struct{}
}

func (p *fakeProber) Probe(ctx context.Context, nodeID uint64) error {
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail[nodeID] {
		return errors.New("connection refused")
	}
	return nil
}

func testConfig() Config {
	return Config{
		HeartbeatInterval:  20 * time.Millisecond,
		SuspicionThreshold: 3,
		ProbeTimeout:       100 * time.Millisecond,
	}
}

func waitForState(t *testing.T, m *Monitor, id uint64, want cluster.HealthState) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, ok := m.State(id); ok && got == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	got, _ := m.State(id)
	require.Equal(t, want, got)
}

func TestSilentNodeIsDeclaredDead(t *testing.T) {
	var deadMu sync.Mutex
	var dead []uint64

	m := NewMonitor(testConfig(), &fakeProber{fail: map[uint64]bool{7: true}}, func(id uint64) {
		deadMu.Lock()
		dead = append(dead, id)
		deadMu.Unlock()
	})
	m.Track(7)
	m.Start()
	defer m.Stop()

	waitForState(t, m, 7, cluster.Dead)

	deadMu.Lock()
	require.Equal(t, []uint64{7}, dead)
	deadMu.Unlock()
}

func TestSlowNodeSurvivesProbe(t *testing.T) {
	cfg := testConfig()
	cfg.ProbeTimeout = 2 * time.Second
	gate := make(chan struct{})
	m := NewMonitor(cfg, &fakeProber{block: gate}, func(id uint64) {
		t.Errorf("node %d wrongly declared dead", id)
	})
	m.Track(5)
	m.Start()
	defer m.Stop()

	// The node never heartbeats but answers the direct probe, so it must
	// come back healthy rather than be declared dead.
	waitForState(t, m, 5, cluster.Suspect)
	close(gate)
	waitForState(t, m, 5, cluster.Healthy)
}

func TestHeartbeatsKeepNodeHealthy(t *testing.T) {
	m := NewMonitor(testConfig(), &fakeProber{fail: map[uint64]bool{3: true}}, func(id uint64) {
		t.Errorf("node %d wrongly declared dead", id)
	})
	m.Track(3)
	m.Start()
	defer m.Stop()

	for i := 0; i < 20; i++ {
		m.Observe(3)
		time.Sleep(10 * time.Millisecond)
	}

	state, ok := m.State(3)
	require.True(t, ok)
	require.Equal(t, cluster.Healthy, state)
}

func TestLateHeartbeatDoesNotReviveDeadNode(t *testing.T) {
	m := NewMonitor(testConfig(), &fakeProber{fail: map[uint64]bool{7: true}}, nil)
	m.Track(7)
	m.Start()
	defer m.Stop()

	waitForState(t, m, 7, cluster.Dead)

	m.Observe(7)
	state, ok := m.State(7)
	require.True(t, ok)
	require.Equal(t, cluster.Dead, state)

	// Re-registration is the only road back.
	m.Track(7)
	state, ok = m.State(7)
	require.True(t, ok)
	require.Equal(t, cluster.Healthy, state)
}

func TestForgetStopsTracking(t *testing.T) {
	m := NewMonitor(testConfig(), &fakeProber{}, nil)
	m.Track(4)
	m.Forget(4)

	_, ok := m.State(4)
	require.False(t, ok)
}
