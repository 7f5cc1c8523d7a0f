package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/configuration"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/node"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
)

const registerAttempts = 10

// Agent is the node-side companion of the orchestrator: it registers the
// node, streams heartbeats, fences on epoch announcements that arrive via
// heartbeat responses, and prunes the replication log while master.
type Agent struct {
	node *node.Node
	cfg  *configuration.Config

	conn *grpc.ClientConn
	cc   datatierpb.ClusterControlClient

	done chan struct{}
	wg   sync.WaitGroup
}

func NewAgent(cfg *configuration.Config, n *node.Node) (*Agent, error) {
	conn, err := dial(cfg.Cluster.OrchestratorAddr)
	if err != nil {
		return nil, fmt.Errorf("dial orchestrator at %s: %w", cfg.Cluster.OrchestratorAddr, err)
	}
	return &Agent{
		node: n,
		cfg:  cfg,
		conn: conn,
		cc:   datatierpb.NewClusterControlClient(conn),
		done: make(chan struct{}),
	}, nil
}

func (a *Agent) Start(ctx context.Context) error {
	if err := a.register(ctx); err != nil {
		return err
	}

	a.wg.Add(1)
	go a.heartbeatLoop()

	if a.cfg.Replication.PruneInterval > 0 {
		a.wg.Add(1)
		go a.pruneLoop()
	}
	return nil
}

func (a *Agent) Stop() {
	close(a.done)
	a.wg.Wait()
	a.conn.Close()
}

// register announces the node to the orchestrator, retrying while the
// orchestrator is still coming up, then adopts the assigned role. A node
// joining as slave resyncs from a master snapshot when it is behind.
func (a *Agent) register(ctx context.Context) error {
	var resp *datatierpb.RegisterResponse
	var err error

	for attempt := 1; attempt <= registerAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, a.cfg.Transport.CallTimeout())
		resp, err = a.cc.Register(callCtx, &datatierpb.RegisterRequest{
			NodeId: a.node.ID(),
			Addr:   a.node.Addr(),
		})
		cancel()
		if err == nil {
			break
		}
		slog.Warn("registration failed, retrying",
			"attempt", attempt, "orchestrator", a.cfg.Cluster.OrchestratorAddr, "error", err)
		select {
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err != nil {
		return fmt.Errorf("register node %d: %w", a.node.ID(), err)
	}

	role := cluster.Role(resp.GetRole())
	a.node.AssumeRole(role, resp.GetEpoch())

	if role == cluster.RoleSlave && resp.GetMasterAddr() != "" {
		if err := a.syncFromMaster(ctx, resp.GetMasterAddr()); err != nil {
			return err
		}
	}
	return nil
}

func (a *Agent) syncFromMaster(ctx context.Context, masterAddr string) error {
	fetcher, err := NewMasterFetcher(masterAddr)
	if err != nil {
		return fmt.Errorf("dial master at %s: %w", masterAddr, err)
	}
	a.node.SetFetcher(fetcher)

	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Transport.CallTimeout())
	data, appliedSeq, epoch, err := fetcher.Snapshot(callCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("snapshot from master: %w", err)
	}

	// A node restarted after log pruning replays only the log suffix, so
	// its watermark can match the master's while its store still lacks
	// everything before the prune point. Restore whenever the local store
	// cannot vouch for the full applied range, not just when behind.
	if appliedSeq > a.node.AppliedSeq() || a.node.NeedsResync() {
		if err := a.node.Restore(data, appliedSeq, epoch); err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}
	}
	return nil
}

func (a *Agent) heartbeatLoop() {
	defer a.wg.Done()

	interval := a.cfg.Health.HeartbeatInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.beat()
		case <-a.done:
			return
		}
	}
}

func (a *Agent) beat() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Transport.CallTimeout())
	resp, err := a.cc.Heartbeat(ctx, &datatierpb.HeartbeatRequest{
		NodeId:     a.node.ID(),
		AppliedSeq: a.node.AppliedSeq(),
		Role:       datatierpb.Role(a.node.Role()),
		Epoch:      a.node.Epoch(),
	})
	cancel()
	if err != nil {
		slog.Debug("heartbeat failed", "node_id", a.node.ID(), "error", err)
		return
	}

	// The orchestrator's epoch running ahead of ours means a failover
	// happened without us. Fence immediately; a deposed master must not
	// accept another write.
	if resp.GetEpoch() > a.node.Epoch() {
		a.node.Fence(resp.GetEpoch())
	}
}

func (a *Agent) pruneLoop() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.cfg.Replication.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if a.node.Role() != cluster.RoleMaster {
				continue
			}
			floor := a.node.AckedFloor()
			if floor == 0 {
				continue
			}
			if err := a.node.PruneLog(floor); err != nil {
				slog.Warn("log prune failed", "keep_seq", floor, "error", err)
			}
		case <-a.done:
			return
		}
	}
}
