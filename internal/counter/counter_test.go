package counter

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
	"github.com/navneetha-rajan/Ride-Share-Application/internal/metrics"
)

func TestRegistry_ConcurrentIncrements(t *testing.T) {
	r := NewRegistry()

	const callers = 16
	const perCaller = 500

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCaller; j++ {
				require.NoError(t, r.Increment(cluster.EntityRide))
			}
		}()
	}
	wg.Wait()

	got, err := r.Get(cluster.EntityRide)
	require.NoError(t, err)
	require.Equal(t, uint64(callers*perCaller), got)

	// Other entity counters are untouched.
	users, err := r.Get(cluster.EntityUser)
	require.NoError(t, err)
	require.Zero(t, users)
}

func TestRegistry_GaugeTracksConcurrentIncrements(t *testing.T) {
	r := NewRegistry()
	gauge := metrics.RequestCounter.WithLabelValues(cluster.EntityRide.String())
	before := testutil.ToFloat64(gauge)

	const callers = 8
	const perCaller = 200

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCaller; j++ {
				require.NoError(t, r.Increment(cluster.EntityRide))
			}
		}()
	}
	wg.Wait()

	// Racing increments must never walk the gauge backwards.
	require.Equal(t, float64(callers*perCaller), testutil.ToFloat64(gauge)-before)
}

func TestRegistry_ResetToZero(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < 10; i++ {
		require.NoError(t, r.Increment(cluster.EntityUser))
	}
	require.NoError(t, r.Reset(cluster.EntityUser))

	got, err := r.Get(cluster.EntityUser)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestRegistry_IncrementAfterResetIsKept(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < 100; i++ {
		require.NoError(t, r.Increment(cluster.EntityRide))
	}

	require.NoError(t, r.Reset(cluster.EntityRide))
	require.NoError(t, r.Increment(cluster.EntityRide))

	got, err := r.Get(cluster.EntityRide)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)
}

func TestRegistry_UnknownEntity(t *testing.T) {
	r := NewRegistry()

	require.ErrorIs(t, r.Increment(cluster.EntityType(42)), cluster.ErrUnknownEntity)
	_, err := r.Get(cluster.EntityType(42))
	require.ErrorIs(t, err, cluster.ErrUnknownEntity)
	require.ErrorIs(t, r.Reset(cluster.EntityType(42)), cluster.ErrUnknownEntity)
}
