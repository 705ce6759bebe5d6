package tsplib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/cvrperr"
	"github.com/kavrail/cvrp-gvns/tsplib"
)

const sparse3 = `NAME : Sparse-Test
DIMENSION : 3
CAPACITY : 50
EDGE_WEIGHT_TYPE : EUC_2D
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

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "fixture.vrp")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Sparse3(t *testing.T) {
	path := writeFixture(t, sparse3)

	in, err := tsplib.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Sparse-Test", in.Name())
	assert.Equal(t, 50, in.Capacity())
	assert.EqualValues(t, 1, in.Depot())
	assert.Equal(t, 5.0, in.Distance(1, 10))
	assert.Equal(t, 10.0, in.Distance(1, 20))
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := tsplib.Load(filepath.Join(t.TempDir(), "missing.vrp"))
	require.ErrorIs(t, err, cvrperr.ErrFileNotFound)
}

func TestLoad_DimensionMismatch(t *testing.T) {
	bad := `NAME : Bad
DIMENSION : 5
CAPACITY : 10
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 1 1
DEMAND_SECTION
1 0
2 1
DEPOT_SECTION
1
-1
EOF
`
	path := writeFixture(t, bad)
	_, err := tsplib.Load(path)
	require.ErrorIs(t, err, cvrperr.ErrParse)
}

func TestLoad_MissingDepot(t *testing.T) {
	bad := `NAME : Bad
DIMENSION : 2
CAPACITY : 10
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 1 1
DEMAND_SECTION
1 0
2 1
EOF
`
	path := writeFixture(t, bad)
	_, err := tsplib.Load(path)
	require.ErrorIs(t, err, cvrperr.ErrParse)
}
