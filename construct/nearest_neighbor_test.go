package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/construct"
	"github.com/kavrail/cvrp-gvns/instance"
)

// Forced-two-routes scenario from spec.md §8 scenario 2.
func TestNearestNeighbor_ForcedTwoRoutes(t *testing.T) {
	coords := map[instance.NodeID][2]float64{1: {0, 0}, 2: {1, 0}, 3: {2, 0}}
	demand := map[instance.NodeID]int{1: 0, 2: 6, 3: 6}
	in, err := instance.New("forced-2", 10, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)

	sol, err := construct.NearestNeighbor(in)
	require.NoError(t, err)

	require.NoError(t, sol.CheckInvariants(in))
	assert.Equal(t, 2, sol.VehicleCount())
	for _, r := range sol.Routes {
		assert.LessOrEqual(t, r.Load, in.Capacity())
	}
}

func TestNearestNeighbor_Deterministic(t *testing.T) {
	coords := map[instance.NodeID][2]float64{
		1: {0, 0}, 2: {1, 0}, 3: {5, 0}, 4: {5, 1}, 5: {1, 1},
	}
	demand := map[instance.NodeID]int{1: 0, 2: 3, 3: 3, 4: 3, 5: 3}
	in, err := instance.New("det", 100, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)

	a, err := construct.NearestNeighbor(in)
	require.NoError(t, err)
	b, err := construct.NearestNeighbor(in)
	require.NoError(t, err)

	require.Equal(t, len(a.Routes), len(b.Routes))
	for i := range a.Routes {
		assert.Equal(t, a.Routes[i].Nodes, b.Routes[i].Nodes)
	}
}

func TestNearestNeighbor_SingleRouteWhenCapacityAllows(t *testing.T) {
	coords := map[instance.NodeID][2]float64{1: {0, 0}, 10: {3, 4}, 20: {10, 0}}
	demand := map[instance.NodeID]int{1: 0, 10: 5, 20: 10}
	in, err := instance.New("Sparse-3", 50, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)

	sol, err := construct.NearestNeighbor(in)
	require.NoError(t, err)
	assert.Equal(t, 1, sol.VehicleCount())
}
