package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sparse3 = `NAME : Sparse-3
TYPE : CVRP
DIMENSION : 3
EDGE_WEIGHT_TYPE : EUC_2D
CAPACITY : 50
NODE_COORD_SECTION
1 0 0
10 3 4
20 10 0
DEMAND_SECTION
1 0
10 5
20 10
DEPOT_SECTION
1
-1
EOF
`

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse3.vrp")
	require.NoError(t, os.WriteFile(path, []byte(sparse3), 0o644))

	code := run([]string{"--instance", path, "--seed", "1", "--iter", "5"})
	require.Equal(t, 0, code)
}

func TestRun_MissingInstanceFlag(t *testing.T) {
	code := run([]string{})
	require.Equal(t, 2, code)
}

func TestRun_NonexistentInstance(t *testing.T) {
	code := run([]string{"--instance", "/no/such/file.vrp"})
	require.Equal(t, 1, code)
}
