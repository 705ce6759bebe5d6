package gvns_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/construct"
	"github.com/kavrail/cvrp-gvns/gvns"
	"github.com/kavrail/cvrp-gvns/instance"
)

func gridInstance(t *testing.T) *instance.Instance {
	t.Helper()
	coords := map[instance.NodeID][2]float64{
		1: {0, 0}, 2: {1, 0}, 3: {2, 0}, 4: {3, 0},
		5: {4, 0}, 6: {5, 0}, 7: {6, 0}, 8: {7, 0},
	}
	demand := map[instance.NodeID]int{1: 0, 2: 2, 3: 2, 4: 2, 5: 2, 6: 2, 7: 2, 8: 2}
	in, err := instance.New("grid8", 20, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)
	return in
}

func TestRun_NeverWorsensAndStopsOnIterBudget(t *testing.T) {
	in := gridInstance(t)
	initial, err := construct.NearestNeighbor(in)
	require.NoError(t, err)

	final, stats, err := gvns.Run(context.Background(), in, initial, gvns.Options{
		Seed:       1,
		IterBudget: 20,
	})
	require.NoError(t, err)
	require.NoError(t, final.CheckInvariants(in))
	assert.Equal(t, "iter", stats.StoppedBy)
	assert.LessOrEqual(t, stats.FinalCost, stats.StartCost+1e-9)
}

func TestRun_StopsOnTimeBudget(t *testing.T) {
	in := gridInstance(t)
	initial, err := construct.NearestNeighbor(in)
	require.NoError(t, err)

	final, stats, err := gvns.Run(context.Background(), in, initial, gvns.Options{
		Seed:       2,
		TimeBudget: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, final.CheckInvariants(in))
	assert.Equal(t, "time", stats.StoppedBy)
}

func TestRun_RespectsContextCancellation(t *testing.T) {
	in := gridInstance(t)
	initial, err := construct.NearestNeighbor(in)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	final, stats, err := gvns.Run(ctx, in, initial, gvns.Options{Seed: 3, IterBudget: 1000})
	require.Error(t, err)
	require.NotNil(t, final)
	assert.Equal(t, "context", stats.StoppedBy)
}

func TestRun_DeterministicForSameSeed(t *testing.T) {
	in := gridInstance(t)
	initial, err := construct.NearestNeighbor(in)
	require.NoError(t, err)

	a, _, err := gvns.Run(context.Background(), in, initial, gvns.Options{Seed: 5, IterBudget: 15})
	require.NoError(t, err)
	b, _, err := gvns.Run(context.Background(), in, initial, gvns.Options{Seed: 5, IterBudget: 15})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}
