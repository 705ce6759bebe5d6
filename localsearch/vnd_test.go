package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/localsearch"
	"github.com/kavrail/cvrp-gvns/solution"
)

func TestDescend_ResolvesCrossing(t *testing.T) {
	coords := map[instance.NodeID][2]float64{
		1: {0, 0},  // depot
		2: {3, 4},  // A
		3: {3, -4}, // B
		4: {6, 0},  // C
	}
	demand := map[instance.NodeID]int{1: 0, 2: 1, 3: 1, 4: 1}
	in, err := instance.New("descend", 50, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)

	sol := solution.New(in, [][]instance.NodeID{{2, 3, 4}})
	before := sol.Cost

	n := localsearch.Descend(sol, in)
	require.NoError(t, sol.CheckInvariants(in))
	assert.Greater(t, n, 0)
	assert.Less(t, sol.Cost, before)
}

func TestDescend_StableOnLocalOptimum(t *testing.T) {
	coords := map[instance.NodeID][2]float64{
		1: {0, 0}, 2: {3, 4}, 3: {6, 0},
	}
	demand := map[instance.NodeID]int{1: 0, 2: 1, 3: 1}
	in, err := instance.New("stable", 50, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)

	sol := solution.New(in, [][]instance.NodeID{{2, 3}})
	n := localsearch.Descend(sol, in)
	assert.Equal(t, 0, n)
}
