package distmat

import (
	"sort"

	"github.com/kavrail/cvrp-gvns/cvrperr"
	"github.com/kavrail/cvrp-gvns/graphmodel"
)

// BuildDense assembles a dense, symmetric distance matrix from a complete
// graphmodel.Graph. Vertices are assigned a dense index 0..N-1 in ascending
// node-id order (the instance's private dense index), and the returned ids
// slice maps index -> original node id so callers can translate back.
//
// Same validate/allocate/populate staging as a general dense-adjacency
// builder, specialized to a complete undirected graph with float64 weights
// (no directed/loop/multi-edge configuration, since tsplib.Load never
// produces any of those).
//
// Complexity: O(V^2 + E) time, O(V^2) space.
func BuildDense(g *graphmodel.Graph) (*Dense, []int, error) {
	if g == nil || g.Len() == 0 {
		return nil, nil, cvrperr.ErrDimensionMismatch
	}

	vertices := g.Vertices()
	ids := make([]int, len(vertices))
	for i, v := range vertices {
		ids[i] = v.ID
	}
	sort.Ints(ids)

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	n := len(ids)
	mat, err := NewDense(n)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range g.Edges() {
		u, ok := index[e.From]
		if !ok {
			return nil, nil, cvrperr.ErrDimensionMismatch
		}
		v, ok := index[e.To]
		if !ok {
			return nil, nil, cvrperr.ErrDimensionMismatch
		}
		_ = mat.Set(u, v, e.Weight)
		_ = mat.Set(v, u, e.Weight)
	}

	return mat, ids, nil
}
