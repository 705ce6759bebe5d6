package plotter_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/plotter"
	"github.com/kavrail/cvrp-gvns/solution"
)

func TestSave_WritesPNG(t *testing.T) {
	coords := map[instance.NodeID][2]float64{1: {0, 0}, 10: {3, 4}, 20: {10, 0}}
	demand := map[instance.NodeID]int{1: 0, 10: 5, 20: 10}
	in, err := instance.New("Sparse-3", 50, 1, coords, demand, instance.EUC2D)
	require.NoError(t, err)

	sol := solution.New(in, [][]instance.NodeID{{10, 20}})

	out := filepath.Join(t.TempDir(), "route.png")
	require.NoError(t, plotter.Save(in, sol, out))
}
