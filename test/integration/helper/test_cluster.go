// Package helper spins up an in-process cluster for integration tests:
// one orchestrator plus any number of data nodes, all talking over real
// gRPC on loopback ports.
package helper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/configuration"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/counter"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/health"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/logging"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/node"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/orchestrator"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replication"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replog"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/storage"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
)

var (
	nextPortBase = 30000 + rand.IntN(os.Getpid()%10000+1)
	portMu       sync.Mutex
	initOnce     sync.Once
)

func allocPort() int {
	portMu.Lock()
	defer portMu.Unlock()
	port := nextPortBase
	nextPortBase++
	return port
}

const (
	heartbeatInterval  = 100 * time.Millisecond
	suspicionThreshold = 2
	probeTimeout       = 500 * time.Millisecond
	callTimeoutSecs    = 2
)

type TestNode struct {
	ID    uint64
	Addr  string
	Node  *node.Node
	Log   *replog.Log
	Repl  *replication.Channel
	Agent *transport.Agent

	server *grpc.Server

	mu      sync.Mutex
	stopped bool
}

type Cluster struct {
	t *testing.T

	Orch     *orchestrator.Orchestrator
	OrchAddr string
	Client   datatierpb.DataTierClient

	orchServer *grpc.Server
	clientConn *grpc.ClientConn

	mu    sync.Mutex
	nodes map[uint64]*TestNode
}

func NewCluster(t *testing.T, numNodes int) *Cluster {
	initOnce.Do(func() { logging.Init("warn") })

	c := &Cluster{t: t, nodes: make(map[uint64]*TestNode)}

	orchPort := allocPort()
	c.OrchAddr = fmt.Sprintf("127.0.0.1:%d", orchPort)

	c.Orch = orchestrator.New(orchestrator.Config{
		Health: health.Config{
			HeartbeatInterval:  heartbeatInterval,
			SuspicionThreshold: suspicionThreshold,
			ProbeTimeout:       probeTimeout,
		},
		CallTimeout: callTimeoutSecs * time.Second,
	}, transport.NodeDialer(), counter.NewRegistry())
	c.Orch.Start()

	orchTransport := &configuration.TransportProperties{
		Address: "127.0.0.1",
		Port:    fmt.Sprint(orchPort),
		Network: "tcp",
		Timeout: callTimeoutSecs,
	}
	_, server, err := transport.StartOrchestrator(orchTransport, c.Orch)
	require.NoError(t, err)
	c.orchServer = server

	conn, err := grpc.NewClient(c.OrchAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	c.clientConn = conn
	c.Client = datatierpb.NewDataTierClient(conn)

	for id := uint64(1); id <= uint64(numNodes); id++ {
		c.AddNode(id, t.TempDir())
	}

	t.Cleanup(c.Shutdown)
	return c
}

// AddNode starts a data node process in-process and registers it. Reusing
// a previous node's storage dir simulates a restart with its log intact.
func (c *Cluster) AddNode(id uint64, storageDir string) *TestNode {
	c.t.Helper()

	port := allocPort()
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	cfg := &configuration.Config{
		Application: configuration.AppProperties{Profile: "node", LogLevel: "warn"},
		Transport: configuration.TransportProperties{
			Address: "127.0.0.1",
			Port:    fmt.Sprint(port),
			Network: "tcp",
			Timeout: callTimeoutSecs,
		},
		Cluster: configuration.ClusterProperties{
			NodeID:           id,
			OrchestratorAddr: c.OrchAddr,
			StorageDir:       storageDir,
			WalNoSync:        true,
		},
		Replication: configuration.ReplicationProperties{
			AckPolicy:     "async",
			AckTimeout:    time.Second,
			SendQueueSize: 256,
		},
		Health: configuration.HealthProperties{
			HeartbeatInterval:  heartbeatInterval,
			SuspicionThreshold: suspicionThreshold,
			ProbeTimeout:       probeTimeout,
		},
	}

	log, err := replog.Open(storageDir, true)
	require.NoError(c.t, err)

	repl := replication.NewChannel(replication.Config{
		Policy:    replication.PolicyAsync,
		QueueSize: 256,
	})

	n := node.New(id, addr, storage.NewService(), log, repl)

	_, server, err := transport.StartNode(&cfg.Transport, n)
	require.NoError(c.t, err)

	agent, err := transport.NewAgent(cfg, n)
	require.NoError(c.t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(c.t, agent.Start(ctx))

	tn := &TestNode{
		ID:     id,
		Addr:   addr,
		Node:   n,
		Log:    log,
		Repl:   repl,
		Agent:  agent,
		server: server,
	}

	c.mu.Lock()
	c.nodes[id] = tn
	c.mu.Unlock()
	return tn
}

func (c *Cluster) NodeByID(id uint64) *TestNode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nodes[id]
}

// StopNode kills a node abruptly: heartbeats stop and its listener goes
// away, exactly what the health monitor sees when a process dies.
func (c *Cluster) StopNode(id uint64) {
	c.mu.Lock()
	tn := c.nodes[id]
	c.mu.Unlock()
	if tn == nil {
		return
	}

	tn.mu.Lock()
	defer tn.mu.Unlock()
	if tn.stopped {
		return
	}
	tn.stopped = true

	tn.Agent.Stop()
	tn.server.Stop()
	tn.Repl.Stop()
	tn.Log.Close()
}

func (c *Cluster) Shutdown() {
	c.mu.Lock()
	ids := make([]uint64, 0, len(c.nodes))
	for id := range c.nodes {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.StopNode(id)
	}
	c.clientConn.Close()
	c.orchServer.Stop()
	c.Orch.Stop()
}

// WaitForMaster blocks until the routing table shows a live master
// matching cond, failing the test on timeout.
func (c *Cluster) WaitForMaster(cond func(cluster.RouteSnapshot) bool) cluster.RouteSnapshot {
	c.t.Helper()
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		if r := c.Orch.Route(); cond(r) {
			return r
		}
		time.Sleep(20 * time.Millisecond)
	}
	c.t.Fatalf("routing table never converged: %+v", c.Orch.Route())
	return cluster.RouteSnapshot{}
}

// WaitForWatermark blocks until the node's applied sequence reaches seq.
func (c *Cluster) WaitForWatermark(id, seq uint64) {
	c.t.Helper()
	tn := c.NodeByID(id)
	require.NotNil(c.t, tn)

	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		if tn.Node.AppliedSeq() >= seq {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	c.t.Fatalf("node %d stuck at watermark %d, want %d", id, tn.Node.AppliedSeq(), seq)
}

// Put writes through the client API with a bounded context.
func (c *Cluster) Put(entity datatierpb.EntityType, key, payload string) (*datatierpb.PutResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Client.Put(ctx, &datatierpb.PutRequest{
		Entity:  entity,
		Key:     key,
		Payload: []byte(payload),
	})
}

func (c *Cluster) Get(entity datatierpb.EntityType, key string) (*datatierpb.GetResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Client.Get(ctx, &datatierpb.GetRequest{Entity: entity, Key: key})
}
