package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/instance"
)

// Sparse-3 scenario from spec.md §8: nodes {1,10,20}, EUC_2D, depot 1.
func TestNew_Sparse3(t *testing.T) {
	coords := map[instance.NodeID][2]float64{
		1:  {0, 0},
		10: {3, 4},
		20: {10, 0},
	}
	demand := map[instance.NodeID]int{1: 0, 10: 5, 20: 10}

	in, err := instance.New("Sparse-3", 50, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)

	assert.Equal(t, 5.0, in.Distance(1, 10))
	assert.Equal(t, 10.0, in.Distance(1, 20))
	assert.Equal(t, 8.0, in.Distance(10, 20)) // sqrt(49+16)=8.0623, rounds to 8
	assert.Equal(t, instance.NodeID(1), in.Depot())
	assert.ElementsMatch(t, []instance.NodeID{1, 10, 20}, in.Nodes())
	assert.ElementsMatch(t, []instance.NodeID{10, 20}, in.Customers())
}

func TestNew_InfeasibleDemand(t *testing.T) {
	coords := map[instance.NodeID][2]float64{1: {0, 0}, 2: {1, 1}}
	demand := map[instance.NodeID]int{1: 0, 2: 999}

	_, err := instance.New("bad", 10, 1, coords, demand, instance.EUC2D)
	require.Error(t, err)
}

func TestDistance_Symmetric(t *testing.T) {
	coords := map[instance.NodeID][2]float64{1: {0, 0}, 2: {3, 4}}
	demand := map[instance.NodeID]int{1: 0, 2: 1}

	in, err := instance.New("sym", 10, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)
	assert.Equal(t, in.Distance(1, 2), in.Distance(2, 1))
	assert.Equal(t, 0.0, in.Distance(1, 1))
}
