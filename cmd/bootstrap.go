package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/configuration"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/counter"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/health"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/node"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/orchestrator"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replication"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replog"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/storage"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport"
)

// runOrchestrator serves the client data API and supervises the cluster
// until the context is cancelled.
func runOrchestrator(ctx context.Context, cfg *configuration.Config, ms *metrics.Server) error {
	orch := orchestrator.New(orchestrator.Config{
		Health: health.Config{
			HeartbeatInterval:  cfg.Health.HeartbeatInterval,
			SuspicionThreshold: cfg.Health.SuspicionThreshold,
			ProbeTimeout:       cfg.Health.ProbeTimeout,
		},
		CallTimeout: cfg.Transport.CallTimeout(),
	}, transport.NodeDialer(), counter.NewRegistry())
	orch.Start()
	defer orch.Stop()

	if ms != nil {
		ms.SetStatus(func() map[string]any {
			route := orch.Route()
			nodes := make(map[string]any)
			for _, info := range orch.Nodes() {
				nodes[fmt.Sprint(info.ID)] = map[string]any{
					"role":        info.Role.String(),
					"health":      info.Health.String(),
					"applied_seq": info.AppliedSeq,
				}
			}
			return map[string]any{
				"epoch":     route.Epoch,
				"master_id": route.MasterID,
				"nodes":     nodes,
			}
		})
	}

	_, server, err := transport.StartOrchestrator(&cfg.Transport, orch)
	if err != nil {
		return err
	}

	slog.Info("Orchestrator ready")
	<-ctx.Done()

	server.GracefulStop()
	return nil
}

// runNode starts a data node, registers it with the orchestrator and keeps
// serving until the context is cancelled.
func runNode(ctx context.Context, cfg *configuration.Config, ms *metrics.Server) error {
	log, err := replog.Open(cfg.Cluster.StorageDir, cfg.Cluster.WalNoSync)
	if err != nil {
		return err
	}
	defer log.Close()

	policy, err := replication.ParsePolicy(cfg.Replication.AckPolicy)
	if err != nil {
		return err
	}
	repl := replication.NewChannel(replication.Config{
		Policy:     policy,
		AckTimeout: cfg.Replication.AckTimeout,
		QueueSize:  cfg.Replication.SendQueueSize,
	})
	defer repl.Stop()

	n := node.New(cfg.Cluster.NodeID, cfg.Transport.ListenAddr(),
		storage.NewService(), log, repl)

	if ms != nil {
		ms.SetStatus(func() map[string]any {
			return map[string]any{
				"node_id":     n.ID(),
				"role":        n.Role().String(),
				"epoch":       n.Epoch(),
				"applied_seq": n.AppliedSeq(),
			}
		})
	}

	_, server, err := transport.StartNode(&cfg.Transport, n)
	if err != nil {
		return err
	}

	agent, err := transport.NewAgent(cfg, n)
	if err != nil {
		server.GracefulStop()
		return err
	}
	if err := agent.Start(ctx); err != nil {
		server.GracefulStop()
		return err
	}

	slog.Info("Node ready", "node_id", n.ID(), "addr", n.Addr())
	<-ctx.Done()

	agent.Stop()
	server.GracefulStop()
	return nil
}
