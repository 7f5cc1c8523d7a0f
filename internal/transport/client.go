package transport

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/node"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/orchestrator"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/replication"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
)

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}))
}

// NodeDialer returns the orchestrator-side factory for node clients.
func NodeDialer() orchestrator.Dialer {
	return func(addr string) (orchestrator.NodeClient, error) {
		conn, err := dial(addr)
		if err != nil {
			return nil, err
		}
		return &nodeClient{conn: conn, nc: datatierpb.NewNodeControlClient(conn)}, nil
	}
}

// nodeClient adapts the generated NodeControl stub to the orchestrator's
// view of a node.
type nodeClient struct {
	conn *grpc.ClientConn
	nc   datatierpb.NodeControlClient
}

func (c *nodeClient) Write(ctx context.Context, epoch uint64, op cluster.Operation) (uint64, error) {
	resp, err := c.nc.Write(ctx, &datatierpb.WriteRequest{
		Epoch:   epoch,
		Entity:  datatierpb.EntityType(op.Entity),
		Kind:    datatierpb.OperationKind(op.Kind),
		Key:     op.Key,
		Payload: op.Payload,
	})
	if err != nil {
		return 0, fromStatus(err)
	}
	return resp.GetSequence(), nil
}

func (c *nodeClient) Read(ctx context.Context, entity cluster.EntityType, key string) (cluster.Record, error) {
	resp, err := c.nc.Read(ctx, &datatierpb.GetRequest{
		Entity: datatierpb.EntityType(entity),
		Key:    key,
	})
	if err != nil {
		return cluster.Record{}, fromStatus(err)
	}
	return cluster.Record{Key: resp.GetRecord().GetKey(), Payload: resp.GetRecord().GetPayload()}, nil
}

func (c *nodeClient) List(ctx context.Context, entity cluster.EntityType, filter cluster.Filter) ([]cluster.Record, error) {
	resp, err := c.nc.ReadList(ctx, &datatierpb.ListRequest{
		Entity: datatierpb.EntityType(entity),
		Filter: cluster.FilterToProto(filter),
	})
	if err != nil {
		return nil, fromStatus(err)
	}
	return cluster.RecordsFromProto(resp.GetRecords()), nil
}

func (c *nodeClient) Probe(ctx context.Context) (uint64, cluster.Role, uint64, error) {
	resp, err := c.nc.Probe(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, 0, 0, fromStatus(err)
	}
	return resp.GetAppliedSeq(), cluster.Role(resp.GetRole()), resp.GetEpoch(), nil
}

func (c *nodeClient) Promote(ctx context.Context, newEpoch uint64) (uint64, error) {
	resp, err := c.nc.Promote(ctx, &datatierpb.PromoteRequest{NewEpoch: newEpoch})
	if err != nil {
		return 0, fromStatus(err)
	}
	return resp.GetLastSeq(), nil
}

func (c *nodeClient) AnnounceEpoch(ctx context.Context, epoch, masterID uint64, masterAddr string) error {
	_, err := c.nc.AnnounceEpoch(ctx, &datatierpb.AnnounceEpochRequest{
		Epoch:      epoch,
		MasterId:   masterID,
		MasterAddr: masterAddr,
	})
	return fromStatus(err)
}

func (c *nodeClient) AddPeer(ctx context.Context, peerID uint64, addr string) error {
	_, err := c.nc.AddPeer(ctx, &datatierpb.AddPeerRequest{NodeId: peerID, Addr: addr})
	return fromStatus(err)
}

func (c *nodeClient) RemovePeer(ctx context.Context, peerID uint64) error {
	_, err := c.nc.RemovePeer(ctx, &datatierpb.RemovePeerRequest{NodeId: peerID})
	return fromStatus(err)
}

func (c *nodeClient) Close() error { return c.conn.Close() }

// peer is the master-side handle on one slave's replication endpoint.
type peer struct {
	id   uint64
	conn *grpc.ClientConn
	nc   datatierpb.NodeControlClient
}

// NewPeer dials a slave for replication delivery.
func NewPeer(id uint64, addr string) (replication.Peer, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, err
	}
	return &peer{id: id, conn: conn, nc: datatierpb.NewNodeControlClient(conn)}, nil
}

func (p *peer) ID() uint64 { return p.id }

func (p *peer) Close() error { return p.conn.Close() }

func (p *peer) Replicate(ctx context.Context, entries []cluster.Entry) (uint64, error) {
	resp, err := p.nc.Replicate(ctx, &datatierpb.ReplicateRequest{
		Entries: cluster.EntriesToProto(entries),
	})
	if err != nil {
		return 0, fromStatus(err)
	}
	return resp.GetAppliedSeq(), nil
}

// MasterFetcher pulls missing sequence ranges and snapshots from the
// current master on behalf of a lagging slave.
type MasterFetcher struct {
	conn *grpc.ClientConn
	nc   datatierpb.NodeControlClient
}

var _ node.Fetcher = (*MasterFetcher)(nil)

func NewMasterFetcher(addr string) (*MasterFetcher, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, err
	}
	return &MasterFetcher{conn: conn, nc: datatierpb.NewNodeControlClient(conn)}, nil
}

func (f *MasterFetcher) FetchEntries(ctx context.Context, from, to uint64) ([]cluster.Entry, error) {
	resp, err := f.nc.FetchEntries(ctx, &datatierpb.FetchEntriesRequest{FromSeq: from, ToSeq: to})
	if err != nil {
		return nil, fromStatus(err)
	}
	return cluster.EntriesFromProto(resp.GetEntries()), nil
}

func (f *MasterFetcher) Snapshot(ctx context.Context) ([]byte, uint64, uint64, error) {
	resp, err := f.nc.Snapshot(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, 0, 0, fromStatus(err)
	}
	return resp.GetData(), resp.GetAppliedSeq(), resp.GetEpoch(), nil
}

func (f *MasterFetcher) Close() error { return f.conn.Close() }
