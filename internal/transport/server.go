// Package transport carries every RPC in the system: the client-facing
// data API served by the orchestrator, the registration and heartbeat
// plane, and the node-to-node replication and control calls.
package transport

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/configuration"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/node"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/orchestrator"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
)

// StartOrchestrator serves the client data API and the cluster control
// plane on the configured listener.
func StartOrchestrator(cfg *configuration.TransportProperties, orch *orchestrator.Orchestrator) (net.Listener, *grpc.Server, error) {
	lis, err := net.Listen(cfg.Network, cfg.ListenAddr())
	if err != nil {
		return nil, nil, err
	}

	s := newServer(cfg.CallTimeout())
	datatierpb.RegisterDataTierServer(s, &dataTierServer{orch: orch})
	datatierpb.RegisterClusterControlServer(s, &clusterControlServer{orch: orch})

	slog.Info("orchestrator transport listening", "addr", lis.Addr().String())
	go serve(s, lis)
	return lis, s, nil
}

// StartNode serves the node control plane: replication, probes, promotion
// and forwarded reads and writes.
func StartNode(cfg *configuration.TransportProperties, n *node.Node) (net.Listener, *grpc.Server, error) {
	lis, err := net.Listen(cfg.Network, cfg.ListenAddr())
	if err != nil {
		return nil, nil, err
	}

	s := newServer(cfg.CallTimeout())
	datatierpb.RegisterNodeControlServer(s, &nodeControlServer{node: n})

	slog.Info("node transport listening", "addr", lis.Addr().String(), "node_id", n.ID())
	go serve(s, lis)
	return lis, s, nil
}

func newServer(timeout time.Duration) *grpc.Server {
	if timeout <= 0 {
		timeout = time.Second
	}
	return grpc.NewServer(grpc.ChainUnaryInterceptor(
		metrics.UnaryServerInterceptor(),
		timeoutInterceptor(timeout),
	))
}

func serve(s *grpc.Server, lis net.Listener) {
	if err := s.Serve(lis); err != nil {
		slog.Error("transport serve stopped", "error", err)
	}
}

func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return handler(ctx, req)
	}
}

// dataTierServer is the client-facing API. Every call routes through the
// orchestrator, which owns master selection and the request counters.
type dataTierServer struct {
	datatierpb.UnimplementedDataTierServer
	orch *orchestrator.Orchestrator
}

func (s *dataTierServer) Put(ctx context.Context, req *datatierpb.PutRequest) (*datatierpb.PutResponse, error) {
	seq, epoch, err := s.orch.RouteWrite(ctx, cluster.Operation{
		Entity:  cluster.EntityType(req.GetEntity()),
		Kind:    cluster.OpCreate,
		Key:     req.GetKey(),
		Payload: req.GetPayload(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.PutResponse{Sequence: seq, Epoch: epoch}, nil
}

func (s *dataTierServer) Get(ctx context.Context, req *datatierpb.GetRequest) (*datatierpb.GetResponse, error) {
	rec, epoch, err := s.orch.RouteRead(ctx, cluster.EntityType(req.GetEntity()), req.GetKey())
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.GetResponse{
		Record: &datatierpb.Record{Key: rec.Key, Payload: rec.Payload},
		Epoch:  epoch,
	}, nil
}

func (s *dataTierServer) Delete(ctx context.Context, req *datatierpb.DeleteRequest) (*datatierpb.DeleteResponse, error) {
	seq, epoch, err := s.orch.RouteWrite(ctx, cluster.Operation{
		Entity: cluster.EntityType(req.GetEntity()),
		Kind:   cluster.OpDelete,
		Key:    req.GetKey(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.DeleteResponse{Sequence: seq, Epoch: epoch}, nil
}

func (s *dataTierServer) List(ctx context.Context, req *datatierpb.ListRequest) (*datatierpb.ListResponse, error) {
	records, epoch, err := s.orch.RouteList(ctx,
		cluster.EntityType(req.GetEntity()), cluster.FilterFromProto(req.GetFilter()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.ListResponse{
		Records: cluster.RecordsToProto(records),
		Epoch:   epoch,
	}, nil
}

func (s *dataTierServer) Count(ctx context.Context, req *datatierpb.CountRequest) (*datatierpb.CountResponse, error) {
	count, err := s.orch.Count(cluster.EntityType(req.GetEntity()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.CountResponse{Count: count}, nil
}

func (s *dataTierServer) ResetCount(ctx context.Context, req *datatierpb.ResetCountRequest) (*emptypb.Empty, error) {
	if err := s.orch.ResetCount(cluster.EntityType(req.GetEntity())); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

type clusterControlServer struct {
	datatierpb.UnimplementedClusterControlServer
	orch *orchestrator.Orchestrator
}

func (s *clusterControlServer) Register(ctx context.Context, req *datatierpb.RegisterRequest) (*datatierpb.RegisterResponse, error) {
	role, epoch, masterID, masterAddr, err := s.orch.Register(ctx, req.GetNodeId(), req.GetAddr())
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.RegisterResponse{
		Role:       datatierpb.Role(role),
		Epoch:      epoch,
		MasterId:   masterID,
		MasterAddr: masterAddr,
	}, nil
}

func (s *clusterControlServer) Heartbeat(ctx context.Context, req *datatierpb.HeartbeatRequest) (*datatierpb.HeartbeatResponse, error) {
	epoch, err := s.orch.Heartbeat(req.GetNodeId(), req.GetAppliedSeq(), cluster.Role(req.GetRole()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.HeartbeatResponse{Epoch: epoch}, nil
}

type nodeControlServer struct {
	datatierpb.UnimplementedNodeControlServer
	node *node.Node
}

func (s *nodeControlServer) Probe(ctx context.Context, _ *emptypb.Empty) (*datatierpb.ProbeResponse, error) {
	return &datatierpb.ProbeResponse{
		AppliedSeq: s.node.AppliedSeq(),
		Role:       datatierpb.Role(s.node.Role()),
		Epoch:      s.node.Epoch(),
	}, nil
}

func (s *nodeControlServer) Promote(ctx context.Context, req *datatierpb.PromoteRequest) (*datatierpb.PromoteResponse, error) {
	lastSeq, err := s.node.Promote(ctx, req.GetNewEpoch())
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.PromoteResponse{LastSeq: lastSeq}, nil
}

func (s *nodeControlServer) AnnounceEpoch(ctx context.Context, req *datatierpb.AnnounceEpochRequest) (*emptypb.Empty, error) {
	s.node.Fence(req.GetEpoch())
	if req.GetMasterAddr() != "" && req.GetMasterId() != s.node.ID() {
		fetcher, err := NewMasterFetcher(req.GetMasterAddr())
		if err != nil {
			slog.Warn("retargeting gap fetcher failed",
				"master_addr", req.GetMasterAddr(), "error", err)
		} else {
			s.node.SetFetcher(fetcher)
		}
	}
	return &emptypb.Empty{}, nil
}

func (s *nodeControlServer) AddPeer(ctx context.Context, req *datatierpb.AddPeerRequest) (*emptypb.Empty, error) {
	peer, err := NewPeer(req.GetNodeId(), req.GetAddr())
	if err != nil {
		return nil, toStatus(err)
	}
	s.node.AddPeer(peer)
	return &emptypb.Empty{}, nil
}

func (s *nodeControlServer) RemovePeer(ctx context.Context, req *datatierpb.RemovePeerRequest) (*emptypb.Empty, error) {
	s.node.RemovePeer(req.GetNodeId())
	return &emptypb.Empty{}, nil
}

func (s *nodeControlServer) Replicate(ctx context.Context, req *datatierpb.ReplicateRequest) (*datatierpb.ReplicateResponse, error) {
	applied, err := s.node.Replicate(ctx, cluster.EntriesFromProto(req.GetEntries()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.ReplicateResponse{AppliedSeq: applied}, nil
}

func (s *nodeControlServer) FetchEntries(ctx context.Context, req *datatierpb.FetchEntriesRequest) (*datatierpb.FetchEntriesResponse, error) {
	entries, err := s.node.FetchEntries(ctx, req.GetFromSeq(), req.GetToSeq())
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.FetchEntriesResponse{Entries: cluster.EntriesToProto(entries)}, nil
}

func (s *nodeControlServer) Write(ctx context.Context, req *datatierpb.WriteRequest) (*datatierpb.WriteResponse, error) {
	seq, err := s.node.Write(ctx, req.GetEpoch(), cluster.Operation{
		Entity:  cluster.EntityType(req.GetEntity()),
		Kind:    cluster.OperationKind(req.GetKind()),
		Key:     req.GetKey(),
		Payload: req.GetPayload(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.WriteResponse{Sequence: seq}, nil
}

func (s *nodeControlServer) Read(ctx context.Context, req *datatierpb.GetRequest) (*datatierpb.GetResponse, error) {
	rec, err := s.node.Read(cluster.EntityType(req.GetEntity()), req.GetKey())
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.GetResponse{
		Record: &datatierpb.Record{Key: rec.Key, Payload: rec.Payload},
		Epoch:  s.node.Epoch(),
	}, nil
}

func (s *nodeControlServer) ReadList(ctx context.Context, req *datatierpb.ListRequest) (*datatierpb.ListResponse, error) {
	records, err := s.node.List(
		cluster.EntityType(req.GetEntity()), cluster.FilterFromProto(req.GetFilter()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.ListResponse{
		Records: cluster.RecordsToProto(records),
		Epoch:   s.node.Epoch(),
	}, nil
}

func (s *nodeControlServer) Snapshot(ctx context.Context, _ *emptypb.Empty) (*datatierpb.SnapshotResponse, error) {
	data, appliedSeq, epoch, err := s.node.Snapshot()
	if err != nil {
		return nil, toStatus(err)
	}
	return &datatierpb.SnapshotResponse{Data: data, AppliedSeq: appliedSeq, Epoch: epoch}, nil
}
