// Package orchestrator owns cluster membership and routing. It assigns
// roles at registration time, routes client traffic to the right node,
// watches health and runs the promotion protocol when the master dies.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/counter"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/health"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
)

// NodeClient is the orchestrator's handle on one data node. The transport
// layer provides the gRPC-backed implementation.
type NodeClient interface {
	Write(ctx context.Context, epoch uint64, op cluster.Operation) (uint64, error)
	Read(ctx context.Context, entity cluster.EntityType, key string) (cluster.Record, error)
	List(ctx context.Context, entity cluster.EntityType, filter cluster.Filter) ([]cluster.Record, error)
	Probe(ctx context.Context) (appliedSeq uint64, role cluster.Role, epoch uint64, err error)
	Promote(ctx context.Context, newEpoch uint64) (lastSeq uint64, err error)
	AnnounceEpoch(ctx context.Context, epoch, masterID uint64, masterAddr string) error
	AddPeer(ctx context.Context, peerID uint64, addr string) error
	RemovePeer(ctx context.Context, peerID uint64) error
	Close() error
}

// Dialer opens a NodeClient to the node listening at addr.
type Dialer func(addr string) (NodeClient, error)

type member struct {
	info   cluster.NodeInfo
	client NodeClient
}

type Config struct {
	Health      health.Config
	CallTimeout time.Duration
}

type Orchestrator struct {
	dial     Dialer
	counters *counter.Registry
	monitor  *health.Monitor

	callTimeout time.Duration

	mu       sync.Mutex
	epoch    uint64
	version  uint64
	masterID uint64 // 0 while no master is available
	nodes    map[uint64]*member

	// promoteMu serializes the promotion protocol. Concurrent triggers
	// queue up here and are discarded once the epoch has moved on.
	promoteMu sync.Mutex
}

func New(cfg Config, dial Dialer, counters *counter.Registry) *Orchestrator {
	o := &Orchestrator{
		dial:        dial,
		counters:    counters,
		callTimeout: cfg.CallTimeout,
		nodes:       make(map[uint64]*member),
	}
	if o.callTimeout <= 0 {
		o.callTimeout = 3 * time.Second
	}
	o.monitor = health.NewMonitor(cfg.Health, proberFunc(o.probeNode), o.onNodeDead)
	return o
}

func (o *Orchestrator) Start() { o.monitor.Start() }

func (o *Orchestrator) Stop() {
	o.monitor.Stop()
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, m := range o.nodes {
		m.client.Close()
	}
}

type proberFunc func(ctx context.Context, nodeID uint64) error

func (f proberFunc) Probe(ctx context.Context, nodeID uint64) error { return f(ctx, nodeID) }

func (o *Orchestrator) probeNode(ctx context.Context, nodeID uint64) error {
	o.mu.Lock()
	m, ok := o.nodes[nodeID]
	o.mu.Unlock()
	if !ok {
		return cluster.ErrUnknownNode
	}
	_, _, _, err := m.client.Probe(ctx)
	return err
}

// Register adds a node to the cluster, or re-admits one that was declared
// dead. The first node becomes master at epoch 1; everyone after that
// joins as a slave of the current master.
func (o *Orchestrator) Register(ctx context.Context, nodeID uint64, addr string) (cluster.Role, uint64, uint64, string, error) {
	client, err := o.dial(addr)
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("dial node %d at %s: %w", nodeID, addr, err)
	}

	o.mu.Lock()
	if old, ok := o.nodes[nodeID]; ok {
		old.client.Close()
	}

	role := cluster.RoleSlave
	switch {
	case o.masterID == 0:
		// No master on record, either a fresh cluster or a total
		// collapse. Seat this node and advance the epoch so any
		// zombie of a previous master stays fenced out.
		role = cluster.RoleMaster
		o.masterID = nodeID
		o.epoch++
		o.version++
		metrics.ClusterEpoch.Set(float64(o.epoch))
	case o.masterID == nodeID:
		role = cluster.RoleMaster
	}

	o.nodes[nodeID] = &member{
		info: cluster.NodeInfo{
			ID:            nodeID,
			Addr:          addr,
			Role:          role,
			Epoch:         o.epoch,
			Health:        cluster.Healthy,
			LastHeartbeat: time.Now(),
		},
		client: client,
	}
	epoch := o.epoch
	masterID := o.masterID
	var masterAddr string
	var masterClient NodeClient
	if mm, ok := o.nodes[masterID]; ok {
		masterAddr = mm.info.Addr
		masterClient = mm.client
	}
	o.mu.Unlock()

	o.monitor.Track(nodeID)
	o.publishNodeStates()

	// Wire the new slave into the master's replication fan-out.
	if role == cluster.RoleSlave && masterClient != nil {
		peerCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
		err := masterClient.AddPeer(peerCtx, nodeID, addr)
		cancel()
		if err != nil {
			slog.Warn("add peer on master failed", "node_id", nodeID, "error", err)
		}
	}

	slog.Info("node registered", "node_id", nodeID, "addr", addr, "role", role, "epoch", epoch)
	return role, epoch, masterID, masterAddr, nil
}

// Heartbeat records a node's liveness report and returns the current
// epoch so deposed masters learn they have been superseded.
func (o *Orchestrator) Heartbeat(nodeID, appliedSeq uint64, role cluster.Role) (uint64, error) {
	o.mu.Lock()
	m, ok := o.nodes[nodeID]
	if !ok {
		epoch := o.epoch
		o.mu.Unlock()
		return epoch, fmt.Errorf("node %d: %w", nodeID, cluster.ErrUnknownNode)
	}
	m.info.AppliedSeq = appliedSeq
	m.info.Role = role
	m.info.LastHeartbeat = time.Now()
	epoch := o.epoch
	o.mu.Unlock()

	o.monitor.Observe(nodeID)
	return epoch, nil
}

// RouteWrite forwards a client write to the current master under a
// consistent (epoch, master) snapshot.
func (o *Orchestrator) RouteWrite(ctx context.Context, op cluster.Operation) (uint64, uint64, error) {
	if !op.Entity.Valid() {
		return 0, 0, cluster.ErrUnknownEntity
	}
	o.counters.Increment(op.Entity)

	o.mu.Lock()
	epoch := o.epoch
	m, ok := o.nodes[o.masterID]
	o.mu.Unlock()

	if o.masterDown(ok, m) {
		metrics.WritesTotal.WithLabelValues(op.Entity.String(), "no_master").Inc()
		return 0, epoch, cluster.ErrNoAvailableMaster
	}

	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	seq, err := m.client.Write(callCtx, epoch, op)
	cancel()
	if err != nil {
		metrics.WritesTotal.WithLabelValues(op.Entity.String(), "error").Inc()
		return 0, epoch, err
	}
	metrics.WritesTotal.WithLabelValues(op.Entity.String(), "ok").Inc()
	return seq, epoch, nil
}

// RouteRead serves a point read from the freshest live slave, falling back
// to the master when no slave is available.
func (o *Orchestrator) RouteRead(ctx context.Context, entity cluster.EntityType, key string) (cluster.Record, uint64, error) {
	if !entity.Valid() {
		return cluster.Record{}, 0, cluster.ErrUnknownEntity
	}
	o.counters.Increment(entity)

	target, epoch, targetRole, err := o.pickReadTarget()
	if err != nil {
		return cluster.Record{}, epoch, err
	}

	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()
	rec, err := target.Read(callCtx, entity, key)
	if err != nil {
		return cluster.Record{}, epoch, err
	}
	metrics.ReadsTotal.WithLabelValues(entity.String(), targetRole.String()).Inc()
	return rec, epoch, nil
}

// RouteList serves a filtered scan the same way RouteRead does.
func (o *Orchestrator) RouteList(ctx context.Context, entity cluster.EntityType, filter cluster.Filter) ([]cluster.Record, uint64, error) {
	if !entity.Valid() {
		return nil, 0, cluster.ErrUnknownEntity
	}
	o.counters.Increment(entity)

	target, epoch, targetRole, err := o.pickReadTarget()
	if err != nil {
		return nil, epoch, err
	}

	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()
	records, err := target.List(callCtx, entity, filter)
	if err != nil {
		return nil, epoch, err
	}
	metrics.ReadsTotal.WithLabelValues(entity.String(), targetRole.String()).Inc()
	return records, epoch, nil
}

// pickReadTarget prefers the live slave with the highest applied sequence,
// which is the one closest to the master's state.
func (o *Orchestrator) pickReadTarget() (NodeClient, uint64, cluster.Role, error) {
	states := o.monitor.States()

	o.mu.Lock()
	defer o.mu.Unlock()

	var best *member
	for id, m := range o.nodes {
		if id == o.masterID || states[id] == cluster.Dead {
			continue
		}
		if best == nil || m.info.AppliedSeq > best.info.AppliedSeq ||
			(m.info.AppliedSeq == best.info.AppliedSeq && m.info.ID < best.info.ID) {
			best = m
		}
	}
	if best != nil {
		return best.client, o.epoch, cluster.RoleSlave, nil
	}

	if m, ok := o.nodes[o.masterID]; ok && o.masterID != 0 && states[o.masterID] != cluster.Dead {
		return m.client, o.epoch, cluster.RoleMaster, nil
	}
	return nil, o.epoch, 0, cluster.ErrNoAvailableMaster
}

func (o *Orchestrator) masterDown(ok bool, m *member) bool {
	if !ok || m == nil {
		return true
	}
	state, tracked := o.monitor.State(m.info.ID)
	return !tracked || state == cluster.Dead
}

// onNodeDead reacts to a confirmed death. A dead master triggers the
// promotion protocol; a dead slave just leaves the routing table.
func (o *Orchestrator) onNodeDead(nodeID uint64) {
	o.mu.Lock()
	m, ok := o.nodes[nodeID]
	if ok {
		m.info.Health = cluster.Dead
	}
	wasMaster := nodeID == o.masterID
	masterID := o.masterID
	var masterClient NodeClient
	if mm, ok := o.nodes[masterID]; ok && !wasMaster {
		masterClient = mm.client
	}
	o.mu.Unlock()

	o.publishNodeStates()

	if !ok {
		return
	}

	if wasMaster {
		o.promote(nodeID)
		return
	}

	// Dead slave: detach it from the master's replication fan-out.
	if masterClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), o.callTimeout)
		if err := masterClient.RemovePeer(ctx, nodeID); err != nil {
			slog.Warn("remove peer on master failed", "node_id", nodeID, "error", err)
		}
		cancel()
	}
	slog.Info("slave removed from routing", "node_id", nodeID)
}

// promote elects a new master after deadMasterID was confirmed dead. The
// winner is the live slave with the highest applied sequence; ties go to
// the lowest node id. Exactly one epoch increment happens per actual
// master death, no matter how many triggers race in.
func (o *Orchestrator) promote(deadMasterID uint64) {
	o.promoteMu.Lock()
	defer o.promoteMu.Unlock()

	started := time.Now()

	o.mu.Lock()
	if o.masterID != deadMasterID {
		// A concurrent trigger already completed the failover.
		o.mu.Unlock()
		metrics.PromotionsDiscarded.Inc()
		slog.Info("promotion trigger discarded", "dead_master", deadMasterID)
		return
	}
	epoch := o.epoch
	candidates := o.liveSlavesLocked()
	o.mu.Unlock()

	winner := o.electWinner(candidates)
	if winner == nil {
		o.mu.Lock()
		o.masterID = 0
		o.version++
		o.mu.Unlock()
		slog.Error("no live slave to promote", "dead_master", deadMasterID, "epoch", epoch)
		return
	}

	newEpoch := epoch + 1
	ctx, cancel := context.WithTimeout(context.Background(), o.callTimeout)
	lastSeq, err := winner.client.Promote(ctx, newEpoch)
	cancel()
	if err != nil {
		o.mu.Lock()
		o.masterID = 0
		o.version++
		o.mu.Unlock()
		slog.Error("promote call failed", "node_id", winner.info.ID, "error", err)
		return
	}

	o.mu.Lock()
	o.epoch = newEpoch
	o.masterID = winner.info.ID
	o.version++
	if m, ok := o.nodes[winner.info.ID]; ok {
		m.info.Role = cluster.RoleMaster
		m.info.Epoch = newEpoch
	}
	slaves := o.liveSlavesLocked()
	masterAddr := winner.info.Addr
	o.mu.Unlock()

	metrics.ClusterEpoch.Set(float64(newEpoch))
	metrics.PromotionsTotal.Inc()
	metrics.PromotionDuration.Observe(time.Since(started).Seconds())
	o.publishNodeStates()

	slog.Info("master promoted",
		"node_id", winner.info.ID, "epoch", newEpoch, "last_seq", lastSeq)

	// Fence survivors on the new epoch and rebuild the replication
	// fan-out around the new master.
	for _, s := range slaves {
		ctx, cancel := context.WithTimeout(context.Background(), o.callTimeout)
		if err := s.client.AnnounceEpoch(ctx, newEpoch, winner.info.ID, masterAddr); err != nil {
			slog.Warn("epoch announce failed", "node_id", s.info.ID, "error", err)
		}
		cancel()

		ctx, cancel = context.WithTimeout(context.Background(), o.callTimeout)
		if err := winner.client.AddPeer(ctx, s.info.ID, s.info.Addr); err != nil {
			slog.Warn("add peer on new master failed", "node_id", s.info.ID, "error", err)
		}
		cancel()
	}
}

// liveSlavesLocked snapshots every non-master node not declared dead.
// Callers hold o.mu.
func (o *Orchestrator) liveSlavesLocked() []*member {
	states := o.monitor.States()
	var out []*member
	for id, m := range o.nodes {
		if id == o.masterID || states[id] == cluster.Dead {
			continue
		}
		out = append(out, m)
	}
	return out
}

// electWinner probes every candidate for a fresh applied watermark and
// picks the highest; ties break toward the lowest node id. Heartbeat
// watermarks can be stale by one interval, so the probe is authoritative.
func (o *Orchestrator) electWinner(candidates []*member) *member {
	var winner *member
	var winnerSeq uint64

	for _, c := range candidates {
		ctx, cancel := context.WithTimeout(context.Background(), o.callTimeout)
		appliedSeq, _, _, err := c.client.Probe(ctx)
		cancel()
		if err != nil {
			slog.Warn("candidate probe failed", "node_id", c.info.ID, "error", err)
			continue
		}
		if winner == nil ||
			appliedSeq > winnerSeq ||
			(appliedSeq == winnerSeq && c.info.ID < winner.info.ID) {
			winner = c
			winnerSeq = appliedSeq
		}
	}
	return winner
}

// Count and ResetCount expose the per-entity request counters.
func (o *Orchestrator) Count(entity cluster.EntityType) (uint64, error) {
	return o.counters.Get(entity)
}

func (o *Orchestrator) ResetCount(entity cluster.EntityType) error {
	return o.counters.Reset(entity)
}

// Route returns the current routing snapshot.
func (o *Orchestrator) Route() cluster.RouteSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return cluster.RouteSnapshot{Epoch: o.epoch, Version: o.version, MasterID: o.masterID}
}

// Nodes lists the orchestrator's view of every registered node.
func (o *Orchestrator) Nodes() []cluster.NodeInfo {
	states := o.monitor.States()

	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]cluster.NodeInfo, 0, len(o.nodes))
	for id, m := range o.nodes {
		info := m.info
		if s, ok := states[id]; ok {
			info.Health = s
		}
		out = append(out, info)
	}
	return out
}

func (o *Orchestrator) publishNodeStates() {
	counts := map[cluster.HealthState]int{}
	for _, s := range o.monitor.States() {
		counts[s]++
	}
	for _, s := range []cluster.HealthState{cluster.Healthy, cluster.Suspect, cluster.Dead} {
		metrics.ClusterNodes.WithLabelValues(s.String()).Set(float64(counts[s]))
	}
}
