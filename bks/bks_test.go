package bks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavrail/cvrp-gvns/bks"
)

func TestRead_Present(t *testing.T) {
	dir := t.TempDir()
	vrp := filepath.Join(dir, "X-n101-k25.vrp")
	sol := filepath.Join(dir, "X-n101-k25.sol")
	require.NoError(t, os.WriteFile(sol, []byte("Route #1: 1 2 3\nCost 27591\n"), 0o644))

	cost, ok := bks.Read(vrp)
	require.True(t, ok)
	assert.Equal(t, 27591.0, cost)
}

func TestRead_Absent(t *testing.T) {
	dir := t.TempDir()
	vrp := filepath.Join(dir, "no-sidecar.vrp")

	_, ok := bks.Read(vrp)
	assert.False(t, ok)
}

func TestGap(t *testing.T) {
	assert.InDelta(t, 10.0, bks.Gap(110, 100), 1e-9)
	assert.Equal(t, 0.0, bks.Gap(50, 0))
}
