// Package node implements a single data-tier node. The same process acts
// as master or slave depending on what the orchestrator assigned it; the
// role can change at runtime through promotion.
package node

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replication"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replog"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/storage"
)

// Fetcher pulls a missing sequence range from the current master. Slaves
// use it to close replication gaps left by dropped deliveries.
type Fetcher interface {
	FetchEntries(ctx context.Context, from, to uint64) ([]cluster.Entry, error)
}

type Node struct {
	id   uint64
	addr string

	mu          sync.Mutex // role and epoch state
	role        cluster.Role
	localEpoch  uint64
	fencedEpoch uint64

	store *storage.Service
	log   *replog.Log
	repl  *replication.Channel

	// commitMu serializes the master commit path and any transition that
	// invalidates it (promotion, epoch fencing). Sequence assignment,
	// log append and apply happen as one unit under it.
	commitMu sync.Mutex
	nextSeq  uint64

	applyMu    sync.Mutex // slave apply path
	appliedSeq uint64
	buffer     map[uint64]cluster.Entry
	fetching   bool
	// storePartial marks a store rebuilt from a front-truncated log. The
	// replayed suffix covers only the sequences still on disk, so records
	// written before the prune point are missing until a snapshot restore.
	storePartial bool

	fetchMu sync.Mutex
	fetcher Fetcher

	fetchTimeout time.Duration
}

func New(id uint64, addr string, store *storage.Service, log *replog.Log, repl *replication.Channel) *Node {
	n := &Node{
		id:           id,
		addr:         addr,
		role:         cluster.RoleSlave,
		store:        store,
		log:          log,
		repl:         repl,
		buffer:       make(map[uint64]cluster.Entry),
		fetchTimeout: 5 * time.Second,
	}
	n.recover()
	return n
}

// recover replays the local replication log into the in-memory store so a
// restarted node resumes from its last applied watermark.
func (n *Node) recover() {
	first, last := n.log.FirstSeq(), n.log.LastSeq()
	if last == 0 {
		return
	}

	entries, err := n.log.Range(first, last)
	if err != nil {
		slog.Error("log replay failed", "node_id", n.id, "error", err)
		return
	}
	for _, e := range entries {
		n.store.Apply(e)
		if e.Epoch > n.localEpoch {
			n.localEpoch = e.Epoch
			n.fencedEpoch = e.Epoch
		}
	}
	n.appliedSeq = last
	n.nextSeq = last
	n.storePartial = first > 1

	metrics.NodeAppliedSeq.Set(float64(last))
	metrics.NodeEpoch.Set(float64(n.localEpoch))
	slog.Info("recovered from local log",
		"node_id", n.id, "first_seq", first, "last_seq", last,
		"epoch", n.localEpoch, "partial", n.storePartial)
}

func (n *Node) ID() uint64   { return n.id }
func (n *Node) Addr() string { return n.addr }

func (n *Node) Role() cluster.Role {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.role
}

func (n *Node) Epoch() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.localEpoch
}

func (n *Node) AppliedSeq() uint64 {
	n.applyMu.Lock()
	defer n.applyMu.Unlock()
	return n.appliedSeq
}

// NeedsResync reports whether the store is missing history the local log
// can no longer replay. A restarted node whose log was pruned holds only
// the suffix; its watermark may match the master's even though every record
// before the prune point is gone, so the watermark alone must not be used
// to skip a snapshot restore.
func (n *Node) NeedsResync() bool {
	n.applyMu.Lock()
	defer n.applyMu.Unlock()
	return n.storePartial
}

// SetFetcher points the gap-retransmission path at the current master.
// Called on registration and again whenever a new epoch is announced.
func (n *Node) SetFetcher(f Fetcher) {
	n.fetchMu.Lock()
	old := n.fetcher
	n.fetcher = f
	n.fetchMu.Unlock()

	if c, ok := old.(io.Closer); ok {
		c.Close()
	}
}

// AssumeRole installs the role and epoch handed out at registration time.
func (n *Node) AssumeRole(role cluster.Role, epoch uint64) {
	n.commitMu.Lock()
	defer n.commitMu.Unlock()
	applied := n.AppliedSeq()
	n.mu.Lock()
	defer n.mu.Unlock()

	n.role = role
	if epoch > n.localEpoch {
		n.localEpoch = epoch
	}
	if epoch > n.fencedEpoch {
		n.fencedEpoch = epoch
	}
	if role == cluster.RoleMaster {
		n.nextSeq = applied
		metrics.NodeIsMaster.Set(1)
	} else {
		metrics.NodeIsMaster.Set(0)
	}
	metrics.NodeEpoch.Set(float64(n.localEpoch))

	slog.Info("assumed role", "node_id", n.id, "role", role, "epoch", n.localEpoch)
}

// Write commits a client operation on the master. The request's epoch must
// match the node's current epoch exactly; anything older was issued against
// a routing table that has since been superseded.
func (n *Node) Write(ctx context.Context, reqEpoch uint64, op cluster.Operation) (uint64, error) {
	if !op.Entity.Valid() {
		return 0, cluster.ErrUnknownEntity
	}

	n.commitMu.Lock()
	defer n.commitMu.Unlock()

	n.mu.Lock()
	role, local, fenced := n.role, n.localEpoch, n.fencedEpoch
	n.mu.Unlock()

	if role != cluster.RoleMaster {
		return 0, fmt.Errorf("node %d: %w", n.id, cluster.ErrNotMaster)
	}
	if reqEpoch != local || fenced > local {
		metrics.StaleEpochRejections.Inc()
		return 0, fmt.Errorf("request epoch %d, node epoch %d (fenced %d): %w",
			reqEpoch, local, fenced, cluster.ErrStaleEpoch)
	}

	e := cluster.Entry{
		Sequence: n.nextSeq + 1,
		Entity:   op.Entity,
		Kind:     op.Kind,
		Key:      op.Key,
		Payload:  op.Payload,
		Epoch:    local,
		CommitTS: time.Now().UTC(),
	}
	if err := n.log.Append(e); err != nil {
		return 0, fmt.Errorf("append seq %d: %w", e.Sequence, err)
	}
	n.nextSeq = e.Sequence
	n.store.Apply(e)
	n.setApplied(e.Sequence)

	// Local commit is durable at this point. A sync-majority timeout
	// still surfaces to the caller with ambiguous durability.
	if err := n.repl.Commit(ctx, e); err != nil {
		return e.Sequence, err
	}
	return e.Sequence, nil
}

// Replicate is the slave-side ingest of entries shipped by the master.
// Entries apply strictly in sequence order; duplicates are skipped, and
// out-of-order arrivals are buffered until the gap before them closes.
func (n *Node) Replicate(ctx context.Context, entries []cluster.Entry) (uint64, error) {
	n.mu.Lock()
	for _, e := range entries {
		if e.Epoch < n.fencedEpoch {
			fenced := n.fencedEpoch
			n.mu.Unlock()
			return n.AppliedSeq(), fmt.Errorf("entry epoch %d below fenced epoch %d: %w",
				e.Epoch, fenced, cluster.ErrStaleEpoch)
		}
		if e.Epoch > n.localEpoch {
			n.localEpoch = e.Epoch
			n.fencedEpoch = e.Epoch
			metrics.NodeEpoch.Set(float64(e.Epoch))
		}
	}
	n.mu.Unlock()

	n.applyMu.Lock()
	for _, e := range entries {
		if err := n.ingestLocked(e); err != nil {
			n.applyMu.Unlock()
			return n.AppliedSeq(), err
		}
	}
	fetchFrom, fetchTo, needFetch := n.gapLocked()
	applied := n.appliedSeq
	n.applyMu.Unlock()

	if needFetch {
		go n.fetchGap(fetchFrom, fetchTo)
	}
	return applied, nil
}

// ingestLocked applies one entry if it is next in line, skips it if it was
// already applied, and buffers it otherwise. Callers hold applyMu.
func (n *Node) ingestLocked(e cluster.Entry) error {
	switch {
	case e.Sequence <= n.appliedSeq:
		return nil // redelivery of an already applied entry
	case e.Sequence == n.appliedSeq+1:
		if err := n.applyLocked(e); err != nil {
			return err
		}
		return n.drainBufferLocked()
	default:
		if _, ok := n.buffer[e.Sequence]; !ok {
			n.buffer[e.Sequence] = e
			metrics.NodeBufferedEntries.Set(float64(len(n.buffer)))
		}
		return nil
	}
}

func (n *Node) applyLocked(e cluster.Entry) error {
	if err := n.log.Append(e); err != nil {
		return fmt.Errorf("append seq %d: %w", e.Sequence, err)
	}
	n.store.Apply(e)
	n.appliedSeq = e.Sequence
	metrics.NodeAppliedSeq.Set(float64(e.Sequence))
	return nil
}

func (n *Node) drainBufferLocked() error {
	for {
		e, ok := n.buffer[n.appliedSeq+1]
		if !ok {
			metrics.NodeBufferedEntries.Set(float64(len(n.buffer)))
			return nil
		}
		delete(n.buffer, e.Sequence)
		if err := n.applyLocked(e); err != nil {
			return err
		}
	}
}

// gapLocked reports the open sequence range between the applied watermark
// and the lowest buffered entry. It also claims the single retransmission
// slot; at most one fetch is in flight at a time.
func (n *Node) gapLocked() (from, to uint64, ok bool) {
	if n.fetching || len(n.buffer) == 0 {
		return 0, 0, false
	}
	low := uint64(0)
	for seq := range n.buffer {
		if low == 0 || seq < low {
			low = seq
		}
	}
	n.fetching = true
	return n.appliedSeq + 1, low - 1, true
}

func (n *Node) fetchGap(from, to uint64) {
	n.fetchMu.Lock()
	fetcher := n.fetcher
	n.fetchMu.Unlock()

	if fetcher == nil {
		n.applyMu.Lock()
		n.fetching = false
		n.applyMu.Unlock()
		return
	}

	slog.Info("fetching replication gap", "node_id", n.id, "from_seq", from, "to_seq", to)

	ctx, cancel := context.WithTimeout(context.Background(), n.fetchTimeout)
	entries, err := fetcher.FetchEntries(ctx, from, to)
	cancel()

	n.applyMu.Lock()
	n.fetching = false
	if err != nil {
		// Give up for now. The next delivery from the master finds the
		// gap still open and triggers another fetch.
		n.applyMu.Unlock()
		slog.Warn("gap fetch failed", "node_id", n.id, "from_seq", from, "error", err)
		return
	}
	for _, e := range entries {
		if ingestErr := n.ingestLocked(e); ingestErr != nil {
			n.applyMu.Unlock()
			slog.Error("gap entry apply failed", "node_id", n.id, "seq", e.Sequence, "error", ingestErr)
			return
		}
	}
	from2, to2, again := n.gapLocked()
	n.applyMu.Unlock()

	if again {
		go n.fetchGap(from2, to2)
	}
}

// FetchEntries serves retransmission requests from lagging slaves out of
// the local replication log.
func (n *Node) FetchEntries(ctx context.Context, from, to uint64) ([]cluster.Entry, error) {
	return n.log.Range(from, to)
}

// Promote turns this slave into the master for newEpoch. A trigger whose
// epoch does not advance the node's own is stale and rejected; this keeps
// a second, delayed promotion from ever taking effect.
func (n *Node) Promote(ctx context.Context, newEpoch uint64) (uint64, error) {
	n.commitMu.Lock()
	defer n.commitMu.Unlock()

	n.mu.Lock()
	if newEpoch <= n.localEpoch {
		local := n.localEpoch
		n.mu.Unlock()
		return 0, fmt.Errorf("promote to epoch %d, already at %d: %w",
			newEpoch, local, cluster.ErrStaleEpoch)
	}
	n.mu.Unlock()

	n.applyMu.Lock()
	// Contiguous buffered entries still count toward the watermark.
	if err := n.drainBufferLocked(); err != nil {
		n.applyMu.Unlock()
		return 0, err
	}
	if len(n.buffer) > 0 {
		slog.Warn("discarding buffered entries past an open gap",
			"node_id", n.id, "discarded", len(n.buffer), "applied_seq", n.appliedSeq)
		n.buffer = make(map[uint64]cluster.Entry)
		metrics.NodeBufferedEntries.Set(0)
	}
	last := n.appliedSeq
	n.applyMu.Unlock()

	n.mu.Lock()
	n.role = cluster.RoleMaster
	n.localEpoch = newEpoch
	n.fencedEpoch = newEpoch
	n.nextSeq = last
	n.mu.Unlock()

	metrics.NodeIsMaster.Set(1)
	metrics.NodeEpoch.Set(float64(newEpoch))
	slog.Info("promoted to master", "node_id", n.id, "epoch", newEpoch, "last_seq", last)
	return last, nil
}

// Fence raises the fenced epoch. Once fenced above its own epoch the node
// rejects every write it would otherwise accept as master.
func (n *Node) Fence(epoch uint64) {
	n.commitMu.Lock()
	defer n.commitMu.Unlock()
	n.mu.Lock()
	defer n.mu.Unlock()

	if epoch <= n.fencedEpoch {
		return
	}
	n.fencedEpoch = epoch
	if n.role == cluster.RoleMaster && epoch > n.localEpoch {
		// A newer master exists somewhere. Step down.
		n.role = cluster.RoleSlave
		metrics.NodeIsMaster.Set(0)
		slog.Warn("fenced and stepping down", "node_id", n.id,
			"local_epoch", n.localEpoch, "fenced_epoch", epoch)
	}
	if n.role == cluster.RoleSlave && epoch > n.localEpoch {
		n.localEpoch = epoch
		metrics.NodeEpoch.Set(float64(epoch))
	}
}

// Read serves a point lookup from the local store. Both roles serve reads.
func (n *Node) Read(entity cluster.EntityType, key string) (cluster.Record, error) {
	if !entity.Valid() {
		return cluster.Record{}, cluster.ErrUnknownEntity
	}
	payload, ok := n.store.Get(entity, key)
	if !ok {
		return cluster.Record{}, fmt.Errorf("%s %q: %w", entity, key, cluster.ErrNotFound)
	}
	return cluster.Record{Key: key, Payload: payload}, nil
}

// List serves a filtered scan from the local store.
func (n *Node) List(entity cluster.EntityType, filter cluster.Filter) ([]cluster.Record, error) {
	if !entity.Valid() {
		return nil, cluster.ErrUnknownEntity
	}
	return n.store.List(entity, filter), nil
}

// Snapshot captures the full store for a node resyncing from scratch.
func (n *Node) Snapshot() (data []byte, appliedSeq uint64, epoch uint64, err error) {
	n.applyMu.Lock()
	defer n.applyMu.Unlock()

	data, err = n.store.Snapshot()
	if err != nil {
		return nil, 0, 0, err
	}
	return data, n.appliedSeq, n.Epoch(), nil
}

// Restore replaces local state with a master snapshot. Used when a node's
// log is too far behind the master's pruned log to catch up entry by entry.
func (n *Node) Restore(data []byte, appliedSeq, epoch uint64) error {
	n.applyMu.Lock()
	defer n.applyMu.Unlock()

	if err := n.store.Restore(data); err != nil {
		return err
	}
	n.appliedSeq = appliedSeq
	n.buffer = make(map[uint64]cluster.Entry)
	n.storePartial = false
	metrics.NodeAppliedSeq.Set(float64(appliedSeq))
	metrics.NodeBufferedEntries.Set(0)

	n.mu.Lock()
	if epoch > n.localEpoch {
		n.localEpoch = epoch
	}
	if epoch > n.fencedEpoch {
		n.fencedEpoch = epoch
	}
	n.mu.Unlock()

	slog.Info("restored from snapshot", "node_id", n.id, "applied_seq", appliedSeq, "epoch", epoch)
	return nil
}

// AddPeer and RemovePeer adjust the replication fan-out while this node is
// master. The orchestrator drives both during membership changes.
func (n *Node) AddPeer(p replication.Peer) { n.repl.AddPeer(p) }
func (n *Node) RemovePeer(id uint64)       { n.repl.RemovePeer(id) }

// AckedFloor exposes how far every slave has acknowledged, for log pruning.
func (n *Node) AckedFloor() uint64 { return n.repl.AckedFloor() }

// PruneLog drops fully acknowledged entries from the replication log,
// keeping keepSeq and everything after it.
func (n *Node) PruneLog(keepSeq uint64) error {
	if keepSeq == 0 {
		return nil
	}
	return n.log.TruncateFront(keepSeq)
}

func (n *Node) setApplied(seq uint64) {
	n.applyMu.Lock()
	if seq > n.appliedSeq {
		n.appliedSeq = seq
		metrics.NodeAppliedSeq.Set(float64(seq))
	}
	n.applyMu.Unlock()
}
