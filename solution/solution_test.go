package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

func sparse3(t *testing.T) *instance.Instance {
	t.Helper()
	coords := map[instance.NodeID][2]float64{1: {0, 0}, 10: {3, 4}, 20: {10, 0}}
	demand := map[instance.NodeID]int{1: 0, 10: 5, 20: 10}
	in, err := instance.New("Sparse-3", 50, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)
	return in
}

func TestNew_SingleRouteCost(t *testing.T) {
	in := sparse3(t)
	sol := solution.New(in, [][]instance.NodeID{{10, 20}})

	// depot(1)->10 (5) + 10->20 (8) + 20->depot(1) (10) = 23, on the spec.md §8 scenario 1 instance.
	assert.InDelta(t, 23.0, sol.Cost, solution.Epsilon)
	assert.Equal(t, 1, sol.VehicleCount())
	require.NoError(t, sol.CheckInvariants(in))
}

func TestClone_Independent(t *testing.T) {
	in := sparse3(t)
	sol := solution.New(in, [][]instance.NodeID{{10, 20}})
	clone := sol.Clone()

	clone.Routes[0].Nodes[0] = 20
	assert.NotEqual(t, sol.Routes[0].Nodes[0], clone.Routes[0].Nodes[0])
}

func TestCheckInvariants_DetectsCapacityViolation(t *testing.T) {
	in := sparse3(t)
	sol := solution.New(in, [][]instance.NodeID{{10, 20}})
	sol.Routes[0].Load = in.Capacity() + 1 // corrupt cache, independent of actual demand sum

	err := sol.CheckInvariants(in)
	require.Error(t, err)
}

func TestEqual_SameRoutesSameOrder(t *testing.T) {
	in := sparse3(t)
	a := solution.New(in, [][]instance.NodeID{{10, 20}})
	b := solution.New(in, [][]instance.NodeID{{10, 20}})
	assert.True(t, a.Equal(b))
}

func TestEqual_DifferentOrderNotEqual(t *testing.T) {
	in := sparse3(t)
	a := solution.New(in, [][]instance.NodeID{{10, 20}})
	b := solution.New(in, [][]instance.NodeID{{20, 10}})
	assert.False(t, a.Equal(b))
}

func TestRecompute_PrunesEmptyRoutes(t *testing.T) {
	in := sparse3(t)
	sol := solution.New(in, [][]instance.NodeID{{10}, {}, {20}})
	sol.Routes = append(sol.Routes, &solution.Route{}) // New already drops empty input routes
	require.NoError(t, sol.Recompute(in))
	assert.Len(t, sol.Routes, 2)
	for _, r := range sol.Routes {
		assert.False(t, r.Empty())
	}
}
