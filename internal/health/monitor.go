// Package health tracks node liveness from heartbeats. A node that misses
// enough consecutive heartbeats becomes suspect and gets one direct probe;
// only a failed probe declares it dead.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
)

// Prober issues the direct confirmation call to a suspect node.
type Prober interface {
	Probe(ctx context.Context, nodeID uint64) error
}

type Config struct {
	HeartbeatInterval  time.Duration
	SuspicionThreshold int
	ProbeTimeout       time.Duration
}

type tracked struct {
	state    cluster.HealthState
	lastBeat time.Time
	misses   int
	probing  bool
}

// Monitor watches every registered node. It never recovers a dead node by
// itself; a dead node must re-register, which re-tracks it as healthy.
type Monitor struct {
	cfg    Config
	prober Prober
	onDead func(nodeID uint64)

	mu    sync.Mutex
	nodes map[uint64]*tracked

	done    chan struct{}
	stopped chan struct{}
}

func NewMonitor(cfg Config, prober Prober, onDead func(nodeID uint64)) *Monitor {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 500 * time.Millisecond
	}
	if cfg.SuspicionThreshold <= 0 {
		cfg.SuspicionThreshold = 3
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 2 * time.Second
	}
	return &Monitor{
		cfg:     cfg,
		prober:  prober,
		onDead:  onDead,
		nodes:   make(map[uint64]*tracked),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.done)
	<-m.stopped
}

// Track starts watching a node, clearing any previous dead state. Called
// on registration and re-registration.
func (m *Monitor) Track(nodeID uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[nodeID] = &tracked{state: cluster.Healthy, lastBeat: time.Now()}
}

func (m *Monitor) Forget(nodeID uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.nodes, nodeID)
}

// Observe records a heartbeat. Heartbeats from a dead node are ignored;
// recovery goes through re-registration, never through a late heartbeat.
func (m *Monitor) Observe(nodeID uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[nodeID]
	if !ok || n.state == cluster.Dead {
		return
	}
	n.lastBeat = time.Now()
	n.misses = 0
	if n.state == cluster.Suspect && !n.probing {
		n.state = cluster.Healthy
	}
}

func (m *Monitor) State(nodeID uint64) (cluster.HealthState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[nodeID]
	if !ok {
		return 0, false
	}
	return n.state, true
}

// States returns a snapshot of every tracked node's health.
func (m *Monitor) States() map[uint64]cluster.HealthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uint64]cluster.HealthState, len(m.nodes))
	for id, n := range m.nodes {
		out[id] = n.state
	}
	return out
}

func (m *Monitor) loop() {
	defer close(m.stopped)

	ticker := time.NewTicker(m.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.tick(time.Now())
		case <-m.done:
			return
		}
	}
}

func (m *Monitor) tick(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, n := range m.nodes {
		if n.state == cluster.Dead || n.probing {
			continue
		}
		if now.Sub(n.lastBeat) < m.cfg.HeartbeatInterval {
			continue
		}

		n.misses++
		metrics.HeartbeatMisses.WithLabelValues(fmt.Sprint(id)).Inc()

		if n.state == cluster.Healthy && n.misses >= m.cfg.SuspicionThreshold {
			n.state = cluster.Suspect
			n.probing = true
			slog.Warn("node suspect", "node_id", id, "misses", n.misses)
			go m.probe(id)
		}
	}
}

// probe issues the single confirmation call that separates a slow node
// from a dead one.
func (m *Monitor) probe(nodeID uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.ProbeTimeout)
	err := m.prober.Probe(ctx, nodeID)
	cancel()

	m.mu.Lock()
	n, ok := m.nodes[nodeID]
	if !ok {
		m.mu.Unlock()
		return
	}
	n.probing = false

	if err == nil {
		metrics.ProbesTotal.WithLabelValues("ok").Inc()
		n.state = cluster.Healthy
		n.misses = 0
		n.lastBeat = time.Now()
		m.mu.Unlock()
		slog.Info("suspect node answered probe", "node_id", nodeID)
		return
	}

	metrics.ProbesTotal.WithLabelValues("failed").Inc()
	n.state = cluster.Dead
	m.mu.Unlock()

	slog.Error("node declared dead", "node_id", nodeID, "error", err)
	if m.onDead != nil {
		m.onDead(nodeID)
	}
}
