package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/transport/gen/datatierpb"
	"github.com/navneetha-rajan/Ride-Share-Application/test/integration/helper"
)

func TestReplicationReachesAllSlaves(t *testing.T) {
	c := helper.NewCluster(t, 3)

	for i := 0; i < 5; i++ {
		resp, err := c.Put(datatierpb.EntityType_USER, "u1", `{"name":"ana","rides":0}`)
		require.NoError(t, err)
		require.Equal(t, uint64(i+1), resp.GetSequence())
	}

	c.WaitForWatermark(2, 5)
	c.WaitForWatermark(3, 5)

	got, err := c.Get(datatierpb.EntityType_USER, "u1")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"ana","rides":0}`, string(got.GetRecord().GetPayload()))
}

func TestMasterFailoverContinuesSequenceUnderNewEpoch(t *testing.T) {
	c := helper.NewCluster(t, 3)

	for i := 0; i < 10; i++ {
		_, err := c.Put(datatierpb.EntityType_RIDE, "r1", `{"status":"requested"}`)
		require.NoError(t, err)
	}
	c.WaitForWatermark(2, 10)
	c.WaitForWatermark(3, 10)

	c.StopNode(1)

	route := c.WaitForMaster(func(r cluster.RouteSnapshot) bool {
		return r.MasterID != 0 && r.MasterID != 1
	})
	require.Equal(t, uint64(2), route.Epoch)

	// The new master accepted no writes yet, so the sequence continues
	// exactly where the dead master left off.
	var resp *datatierpb.PutResponse
	var err error
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err = c.Put(datatierpb.EntityType_RIDE, "r1", `{"status":"accepted"}`)
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err)
	require.Equal(t, uint64(11), resp.GetSequence())
	require.Equal(t, uint64(2), resp.GetEpoch())

	// A write carrying the superseded epoch is fenced out at the node.
	master := c.NodeByID(route.MasterID)
	conn, err := grpc.NewClient(master.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = datatierpb.NewNodeControlClient(conn).Write(ctx, &datatierpb.WriteRequest{
		Epoch:   1,
		Entity:  datatierpb.EntityType_RIDE,
		Kind:    datatierpb.OperationKind_CREATE,
		Key:     "r1",
		Payload: []byte(`{"status":"stale"}`),
	})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestDeadSlaveLeavesReadRouting(t *testing.T) {
	c := helper.NewCluster(t, 2)

	_, err := c.Put(datatierpb.EntityType_USER, "u1", `{"name":"bo"}`)
	require.NoError(t, err)
	c.WaitForWatermark(2, 1)

	c.StopNode(2)

	// Reads keep working, served by the master once the slave is gone.
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if _, err = c.Get(datatierpb.EntityType_USER, "u1"); err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err)
}

func TestNoAvailableMasterSurfacesToClients(t *testing.T) {
	c := helper.NewCluster(t, 1)

	_, err := c.Put(datatierpb.EntityType_USER, "u1", `{}`)
	require.NoError(t, err)

	c.StopNode(1)
	c.WaitForMaster(func(r cluster.RouteSnapshot) bool { return r.MasterID == 0 })

	_, err = c.Put(datatierpb.EntityType_USER, "u2", `{}`)
	require.Error(t, err)
	require.Equal(t, codes.Unavailable, status.Code(err))
}

func TestRestartedSlaveResyncsFromMaster(t *testing.T) {
	c := helper.NewCluster(t, 2)
	dir := t.TempDir()

	// Replace the default second node with one whose storage dir we keep,
	// so we can restart it with its log intact.
	c.StopNode(2)
	restartable := c.AddNode(4, dir)

	for i := 0; i < 5; i++ {
		_, err := c.Put(datatierpb.EntityType_USER, "u1", `{"v":1}`)
		require.NoError(t, err)
	}
	c.WaitForWatermark(4, 5)
	c.StopNode(restartable.ID)

	// The master keeps committing while the slave is down.
	for i := 0; i < 3; i++ {
		_, err := c.Put(datatierpb.EntityType_USER, "u1", `{"v":2}`)
		require.NoError(t, err)
	}

	// On restart the node re-registers and catches up to the master.
	c.AddNode(4, dir)
	c.WaitForWatermark(4, 8)

	got, err := c.Get(datatierpb.EntityType_USER, "u1")
	require.NoError(t, err)
	require.JSONEq(t, `{"v":2}`, string(got.GetRecord().GetPayload()))
}

func TestRestartedPrunedMasterResyncsFromSnapshot(t *testing.T) {
	c := helper.NewCluster(t, 0)
	masterDir := t.TempDir()

	first := c.AddNode(1, masterDir)
	c.AddNode(2, t.TempDir())

	for i := 1; i <= 5; i++ {
		_, err := c.Put(datatierpb.EntityType_USER, fmt.Sprintf("k%d", i), `{"v":1}`)
		require.NoError(t, err)
	}
	c.WaitForWatermark(2, 5)

	// Prune the master's log once the slave has acknowledged everything,
	// then kill it so the slave takes over.
	require.Eventually(t, func() bool { return first.Node.AckedFloor() == 5 },
		10*time.Second, 20*time.Millisecond)
	require.NoError(t, first.Node.PruneLog(5))
	c.StopNode(1)
	c.WaitForMaster(func(r cluster.RouteSnapshot) bool { return r.MasterID == 2 })

	// The restarted node replays only the pruned suffix; its watermark
	// already matches the master's, so only a snapshot restore can bring
	// back the records written before the prune point.
	c.AddNode(1, masterDir)
	c.WaitForWatermark(1, 5)

	for i := 1; i <= 5; i++ {
		got, err := c.Get(datatierpb.EntityType_USER, fmt.Sprintf("k%d", i))
		require.NoError(t, err)
		require.JSONEq(t, `{"v":1}`, string(got.GetRecord().GetPayload()))
	}
}

func TestRequestCountersOverTheAPI(t *testing.T) {
	c := helper.NewCluster(t, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := c.Put(datatierpb.EntityType_USER, "u1", `{}`)
	require.NoError(t, err)
	_, err = c.Get(datatierpb.EntityType_USER, "u1")
	require.NoError(t, err)
	_, err = c.Put(datatierpb.EntityType_RIDE, "r1", `{}`)
	require.NoError(t, err)

	users, err := c.Client.Count(ctx, &datatierpb.CountRequest{Entity: datatierpb.EntityType_USER})
	require.NoError(t, err)
	require.Equal(t, uint64(2), users.GetCount())

	rides, err := c.Client.Count(ctx, &datatierpb.CountRequest{Entity: datatierpb.EntityType_RIDE})
	require.NoError(t, err)
	require.Equal(t, uint64(1), rides.GetCount())

	_, err = c.Client.ResetCount(ctx, &datatierpb.ResetCountRequest{Entity: datatierpb.EntityType_USER})
	require.NoError(t, err)

	users, err = c.Client.Count(ctx, &datatierpb.CountRequest{Entity: datatierpb.EntityType_USER})
	require.NoError(t, err)
	require.Equal(t, uint64(0), users.GetCount())
}
