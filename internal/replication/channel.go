// Package replication ships committed entries from the master to its
// slaves, in commit order, without ever blocking the client write path in
// async mode.
package replication

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"go.etcd.io/etcd/pkg/v3/wait"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
)

type AckPolicy int

const (
	// PolicyAsync acknowledges the client right after local commit. The
	// data-loss window on failover equals the unacknowledged entries.
	PolicyAsync AckPolicy = iota
	// PolicySyncMajority withholds the client ack until a majority of
	// slaves acknowledged, bounded by the ack timeout.
	PolicySyncMajority
)

func ParsePolicy(s string) (AckPolicy, error) {
	switch s {
	case "async", "":
		return PolicyAsync, nil
	case "sync-majority":
		return PolicySyncMajority, nil
	default:
		return 0, fmt.Errorf("unknown ack policy %q", s)
	}
}

// Peer is a slave as seen from the master's replication channel.
type Peer interface {
	ID() uint64
	Replicate(ctx context.Context, entries []cluster.Entry) (appliedSeq uint64, err error)
}

type Config struct {
	Policy     AckPolicy
	AckTimeout time.Duration
	QueueSize  int
}

// Channel fans committed entries out to one sender goroutine per slave.
// Entries dropped by a full or failing sender are recovered by the slave
// itself through gap retransmission, so senders never retry in place.
type Channel struct {
	mu      sync.Mutex
	senders map[uint64]*sender

	policy     AckPolicy
	ackTimeout time.Duration
	queueSize  int

	w          wait.Wait
	quorumSeq  uint64
	lastCommit uint64
}

func NewChannel(cfg Config) *Channel {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1024
	}
	ackTimeout := cfg.AckTimeout
	if ackTimeout <= 0 {
		ackTimeout = 2 * time.Second
	}
	return &Channel{
		senders:    make(map[uint64]*sender),
		policy:     cfg.Policy,
		ackTimeout: ackTimeout,
		queueSize:  queueSize,
		w:          wait.New(),
	}
}

func (c *Channel) Policy() AckPolicy { return c.policy }

// AddPeer starts delivery to a slave. Re-adding an id replaces the old
// sender; a node that re-registered is reachable only through its new
// connection.
func (c *Channel) AddPeer(peer Peer) {
	c.mu.Lock()
	old := c.senders[peer.ID()]
	s := newSender(c, peer, c.queueSize, c.ackTimeout)
	c.senders[peer.ID()] = s
	c.mu.Unlock()

	if old != nil {
		old.stop()
		if closer, ok := old.peer.(io.Closer); ok {
			closer.Close()
		}
	}
	go s.run()

	slog.Info("replication peer added", "peer_id", peer.ID())
}

func (c *Channel) RemovePeer(id uint64) {
	c.mu.Lock()
	s, ok := c.senders[id]
	if ok {
		delete(c.senders, id)
	}
	c.mu.Unlock()

	if ok {
		s.stop()
		if c, isCloser := s.peer.(io.Closer); isCloser {
			c.Close()
		}
		slog.Info("replication peer removed", "peer_id", id)
	}
}

func (c *Channel) PeerIDs() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]uint64, 0, len(c.senders))
	for id := range c.senders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AckedFloor is the highest sequence acknowledged by every current peer.
// Entries below it may be pruned from the replication log.
func (c *Channel) AckedFloor() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.senders) == 0 {
		return c.lastCommit
	}

	floor := uint64(0)
	first := true
	for _, s := range c.senders {
		acked := s.acked.Load()
		if first || acked < floor {
			floor = acked
			first = false
		}
	}
	return floor
}

// Commit hands a freshly committed entry to the channel. Async policy
// returns immediately after enqueueing; sync-majority blocks until a
// majority of slaves acknowledged the sequence or the timeout elapses.
func (c *Channel) Commit(ctx context.Context, e cluster.Entry) error {
	c.mu.Lock()
	c.lastCommit = e.Sequence

	var ackCh <-chan any
	needQuorum := c.policy == PolicySyncMajority && len(c.senders) > 0
	if needQuorum {
		ackCh = c.w.Register(e.Sequence)
	}

	for _, s := range c.senders {
		s.enqueue(e)
	}
	c.mu.Unlock()

	if !needQuorum {
		return nil
	}

	timer := time.NewTimer(c.ackTimeout)
	defer timer.Stop()

	select {
	case <-ackCh:
		return nil
	case <-timer.C:
		c.w.Trigger(e.Sequence, nil) // drop the waiter
		metrics.ReplicationTimeouts.Inc()
		return fmt.Errorf("seq %d: %w", e.Sequence, cluster.ErrReplicationTimeout)
	case <-ctx.Done():
		c.w.Trigger(e.Sequence, nil)
		return ctx.Err()
	}
}

// onAck records a slave's applied watermark and releases every waiter
// whose sequence is now majority-acknowledged. Sequences are gap-free, so
// waiters between the old and new quorum floor are released one by one.
func (c *Channel) onAck(peerID, ackedSeq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	metrics.ReplicationLag.WithLabelValues(fmt.Sprint(peerID)).
		Set(float64(c.lastCommit) - float64(ackedSeq))

	if c.policy != PolicySyncMajority || len(c.senders) == 0 {
		return
	}

	acked := make([]uint64, 0, len(c.senders))
	for _, s := range c.senders {
		acked = append(acked, s.acked.Load())
	}
	sort.Slice(acked, func(i, j int) bool { return acked[i] > acked[j] })

	majority := len(c.senders)/2 + 1
	newQuorum := acked[majority-1]

	for seq := c.quorumSeq + 1; seq <= newQuorum; seq++ {
		c.w.Trigger(seq, true)
	}
	if newQuorum > c.quorumSeq {
		c.quorumSeq = newQuorum
	}
}

func (c *Channel) Stop() {
	c.mu.Lock()
	senders := make([]*sender, 0, len(c.senders))
	for _, s := range c.senders {
		senders = append(senders, s)
	}
	c.senders = make(map[uint64]*sender)
	c.mu.Unlock()

	for _, s := range senders {
		s.stop()
		if c, ok := s.peer.(io.Closer); ok {
			c.Close()
		}
	}
}
