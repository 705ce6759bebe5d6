// Package distmat provides the dense distance-matrix representation used by
// the CVRP instance view: a flat, row-major backing slice for cache-friendly
// reads, with the same Stage-1/Stage-2/Stage-3 validate/execute/finalize
// shape used throughout this codebase's lower layers.
package distmat

import (
	"fmt"

	"github.com/kavrail/cvrp-gvns/cvrperr"
)

// denseErrorf wraps an underlying sentinel with method/coordinate context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("distmat.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square, row-major matrix of float64 distances.
type Dense struct {
	n    int       // rows == cols == n
	data []float64 // flat backing storage, length n*n
}

// NewDense allocates an n×n Dense matrix initialized to zero.
//
// Complexity: O(n^2) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, cvrperr.ErrDimensionMismatch
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix dimension (it is always square).
func (m *Dense) N() int { return m.n }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf("At", row, col, cvrperr.ErrDimensionMismatch)
	}
	return row*m.n + col, nil
}

// At retrieves the distance at (row, col).
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set writes the distance at (row, col). Since every instance in this corpus
// is symmetric or explicit, Set does not mirror (row, col) into (col, row);
// callers that want a symmetric matrix must set both entries themselves
// (see BuildDense, which always does).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// MustAt is a panic-free hot-path accessor for callers that have already
// validated row/col are in range (e.g. move operators working on a prefetched
// buffer's own index space). It returns 0 for an out-of-range access instead
// of panicking, since a corrupted index there signals a bug elsewhere that
// should surface via a test, not a crash in a long-running solve.
//
// Complexity: O(1).
func (m *Dense) MustAt(row, col int) float64 {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0
	}
	return m.data[idx]
}
