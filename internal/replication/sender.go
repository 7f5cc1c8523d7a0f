package replication

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
)

const senderBatchLimit = 64

// sender owns the delivery stream to a single slave. Entries arrive in
// commit order through a bounded queue; when the queue overflows or a
// call fails the affected entries are simply dropped and the slave pulls
// them back through gap retransmission.
type sender struct {
	ch      *Channel
	peer    Peer
	queue   chan cluster.Entry
	done    chan struct{}
	stopped chan struct{}

	acked       atomic.Uint64
	callTimeout time.Duration
}

func newSender(ch *Channel, peer Peer, queueSize int, callTimeout time.Duration) *sender {
	return &sender{
		ch:          ch,
		peer:        peer,
		queue:       make(chan cluster.Entry, queueSize),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
		callTimeout: callTimeout,
	}
}

func (s *sender) enqueue(e cluster.Entry) {
	select {
	case s.queue <- e:
		metrics.ReplicationQueueDepth.WithLabelValues(fmt.Sprint(s.peer.ID())).
			Set(float64(len(s.queue)))
	default:
		// Queue full. The slave notices the gap on the next delivery
		// and fetches the missing range from the master.
		metrics.ReplicationEntriesTotal.WithLabelValues(fmt.Sprint(s.peer.ID()), "dropped").Inc()
	}
}

func (s *sender) run() {
	defer close(s.stopped)

	peerLabel := fmt.Sprint(s.peer.ID())
	for {
		var first cluster.Entry
		select {
		case first = <-s.queue:
		case <-s.done:
			return
		}

		batch := append(make([]cluster.Entry, 0, senderBatchLimit), first)
		for len(batch) < senderBatchLimit {
			select {
			case e := <-s.queue:
				batch = append(batch, e)
			default:
				goto send
			}
		}
	send:
		metrics.ReplicationQueueDepth.WithLabelValues(peerLabel).Set(float64(len(s.queue)))

		ctx, cancel := context.WithTimeout(context.Background(), s.callTimeout)
		appliedSeq, err := s.peer.Replicate(ctx, batch)
		cancel()
		if err != nil {
			metrics.ReplicationEntriesTotal.WithLabelValues(peerLabel, "failed").
				Add(float64(len(batch)))
			slog.Debug("replicate call failed",
				"peer_id", s.peer.ID(), "entries", len(batch), "error", err)
			continue
		}

		metrics.ReplicationEntriesTotal.WithLabelValues(peerLabel, "sent").
			Add(float64(len(batch)))
		if appliedSeq > s.acked.Load() {
			s.acked.Store(appliedSeq)
		}
		s.ch.onAck(s.peer.ID(), appliedSeq)
	}
}

func (s *sender) stop() {
	close(s.done)
	<-s.stopped
}
