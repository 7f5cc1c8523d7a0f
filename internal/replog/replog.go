// Package replog persists the replication log. Entries are appended in
// commit order and kept until every currently-healthy slave has
// acknowledged them; the front of the log is then prunable.
package replog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tidwall/wal"
	"google.golang.org/protobuf/proto"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
)

const logFolder = "replog"

var ErrSeqNotFound = fmt.Errorf("sequence not in log")

// Log wraps a write-ahead log keyed by its own contiguous positions.
// Replication sequence numbers live inside each record, so a node that
// joined mid-stream can still append from its first received sequence.
type Log struct {
	mu sync.Mutex

	log *wal.Log

	nextIdx uint64
	index   map[uint64]uint64 // sequence -> wal index

	firstSeq uint64
	lastSeq  uint64
}

func Open(dir string, noSync bool) (*Log, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	opts := *wal.DefaultOptions
	opts.NoSync = noSync
	w, err := wal.Open(filepath.Join(dir, logFolder), &opts)
	if err != nil {
		return nil, fmt.Errorf("wal.Open: %w", err)
	}

	l := &Log{
		log:     w,
		index:   make(map[uint64]uint64),
		nextIdx: 1,
	}

	if err := l.replay(); err != nil {
		w.Close()
		return nil, err
	}

	return l, nil
}

func (l *Log) replay() error {
	empty, err := l.log.IsEmpty()
	if err != nil {
		return fmt.Errorf("wal.IsEmpty: %w", err)
	}
	if empty {
		return nil
	}

	first, err := l.log.FirstIndex()
	if err != nil {
		return fmt.Errorf("wal.FirstIndex: %w", err)
	}
	last, err := l.log.LastIndex()
	if err != nil {
		return fmt.Errorf("wal.LastIndex: %w", err)
	}

	for idx := first; idx <= last; idx++ {
		data, err := l.log.Read(idx)
		if err != nil {
			return fmt.Errorf("wal.Read(%d): %w", idx, err)
		}

		var pb datatierpb.ReplicationEntry
		if err := proto.Unmarshal(data, &pb); err != nil {
			return fmt.Errorf("unmarshal record %d: %w", idx, err)
		}

		l.index[pb.Sequence] = idx
		if l.firstSeq == 0 {
			l.firstSeq = pb.Sequence
		}
		l.lastSeq = pb.Sequence
	}

	l.nextIdx = last + 1
	return nil
}

func (l *Log) Append(e cluster.Entry) error {
	data, err := proto.Marshal(cluster.EntryToProto(e))
	if err != nil {
		return fmt.Errorf("marshal entry %d: %w", e.Sequence, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	if err := l.log.Write(l.nextIdx, data); err != nil {
		return fmt.Errorf("wal.Write(%d): %w", l.nextIdx, err)
	}
	metrics.WALWritesTotal.Inc()
	metrics.WALWriteDuration.Observe(time.Since(start).Seconds())

	l.index[e.Sequence] = l.nextIdx
	if l.firstSeq == 0 {
		l.firstSeq = e.Sequence
	}
	l.lastSeq = e.Sequence
	l.nextIdx++
	return nil
}

func (l *Log) Read(seq uint64) (cluster.Entry, error) {
	l.mu.Lock()
	idx, ok := l.index[seq]
	l.mu.Unlock()
	if !ok {
		return cluster.Entry{}, fmt.Errorf("read seq %d: %w", seq, ErrSeqNotFound)
	}

	data, err := l.log.Read(idx)
	if err != nil {
		return cluster.Entry{}, fmt.Errorf("wal.Read(%d): %w", idx, err)
	}

	var pb datatierpb.ReplicationEntry
	if err := proto.Unmarshal(data, &pb); err != nil {
		return cluster.Entry{}, fmt.Errorf("unmarshal seq %d: %w", seq, err)
	}
	return cluster.EntryFromProto(&pb), nil
}

// Range returns entries with from <= sequence <= to, in sequence order.
func (l *Log) Range(from, to uint64) ([]cluster.Entry, error) {
	var entries []cluster.Entry
	for seq := from; seq <= to; seq++ {
		e, err := l.Read(seq)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (l *Log) FirstSeq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.firstSeq
}

func (l *Log) LastSeq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastSeq
}

// TruncateFront drops every entry with sequence < keepSeq. Entries still
// unacknowledged by some healthy slave must not be passed here.
func (l *Log) TruncateFront(keepSeq uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if keepSeq <= l.firstSeq || l.firstSeq == 0 {
		return nil
	}
	if keepSeq > l.lastSeq {
		keepSeq = l.lastSeq
	}

	idx, ok := l.index[keepSeq]
	if !ok {
		return fmt.Errorf("truncate to seq %d: %w", keepSeq, ErrSeqNotFound)
	}

	if err := l.log.TruncateFront(idx); err != nil {
		return fmt.Errorf("wal.TruncateFront(%d): %w", idx, err)
	}

	for seq := l.firstSeq; seq < keepSeq; seq++ {
		delete(l.index, seq)
	}
	l.firstSeq = keepSeq
	return nil
}

func (l *Log) Close() error {
	return l.log.Close()
}
