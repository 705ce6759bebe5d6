// Package instance is the read-only provider component (spec.md §3, C1):
// distance(u,v), demand(v), capacity, depot, and the node set. It is the
// sole point where graphmodel.Graph and distmat.Dense are wired together;
// every other package in this module depends only on *Instance.
package instance

import (
	"sort"

	"github.com/kavrail/cvrp-gvns/cvrperr"
	"github.com/kavrail/cvrp-gvns/distmat"
	"github.com/kavrail/cvrp-gvns/graphmodel"
)

// NodeID is an opaque customer/depot identifier. TSPLIB ids may be sparse and
// non-contiguous; NodeID preserves them as-is. The dense 0..N-1 index used by
// the underlying distance matrix is a private implementation detail.
type NodeID int

// EdgeWeightType selects how raw Euclidean distance is stabilized into the
// stored value, per spec.md §3.
type EdgeWeightType int

const (
	// EUC2D rounds the Euclidean distance to the nearest integer, half
	// rounding up (math.Floor(d+0.5)).
	EUC2D EdgeWeightType = iota
	// Explicit keeps the raw float64 Euclidean distance unrounded.
	Explicit
)

// Instance is the immutable, read-only view of a CVRP problem.
type Instance struct {
	name     string
	capacity int
	depot    NodeID
	nodes    []NodeID // sorted ascending, includes depot
	demand   map[NodeID]int
	index    map[NodeID]int // NodeID -> dense matrix index
	dist     *distmat.Dense
	coords   map[NodeID][2]float64
}

// Name returns the instance's TSPLIB NAME header value (may be empty).
func (in *Instance) Name() string { return in.name }

// Capacity returns the fixed per-vehicle capacity.
func (in *Instance) Capacity() int { return in.capacity }

// Depot returns the depot node id.
func (in *Instance) Depot() NodeID { return in.depot }

// Nodes returns every node id (including the depot) in ascending order. The
// returned slice is a copy.
func (in *Instance) Nodes() []NodeID {
	out := make([]NodeID, len(in.nodes))
	copy(out, in.nodes)
	return out
}

// Customers returns every node id except the depot, in ascending order.
func (in *Instance) Customers() []NodeID {
	out := make([]NodeID, 0, len(in.nodes)-1)
	for _, id := range in.nodes {
		if id != in.depot {
			out = append(out, id)
		}
	}
	return out
}

// Demand returns the demand of node v (0 for the depot).
func (in *Instance) Demand(v NodeID) int { return in.demand[v] }

// Coord returns v's original x,y coordinates and whether v is known to this
// instance. Used by package plotter; the solver core never needs raw
// coordinates, only the precomputed distance matrix.
func (in *Instance) Coord(v NodeID) (x, y float64, ok bool) {
	c, ok := in.coords[v]
	if !ok {
		return 0, 0, false
	}
	return c[0], c[1], true
}

// Distance returns the precomputed distance between u and v. Distances are
// symmetric for EUC_2D/Explicit instances built by tsplib.Load, and
// distance(v,v) == 0.
//
// Complexity: O(1).
func (in *Instance) Distance(u, v NodeID) float64 {
	ui, uok := in.index[u]
	vi, vok := in.index[v]
	if !uok || !vok {
		return 0
	}
	return in.dist.MustAt(ui, vi)
}

// New assembles an Instance from raw attributes: coordinates, demands, and
// the resolved capacity/depot/weight type. This is the construction entry
// point tsplib.Load uses; it is exported so tests and other loaders (e.g. a
// future programmatic builder) can bypass the TSPLIB text format.
//
// Validation: every node's demand must not exceed capacity (spec.md §3); a
// violation returns cvrperr.ErrInstanceInfeasible.
func New(name string, capacity int, depot NodeID, coords map[NodeID][2]float64, demand map[NodeID]int, weightType EdgeWeightType) (*Instance, error) {
	if capacity <= 0 {
		return nil, cvrperr.ErrDimensionMismatch
	}
	if _, ok := coords[depot]; !ok {
		return nil, cvrperr.ErrDimensionMismatch
	}

	ids := make([]int, 0, len(coords))
	for id := range coords {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	g := graphmodel.NewGraph()
	for _, id := range ids {
		nid := NodeID(id)
		g.AddVertex(graphmodel.Vertex{ID: id, X: coords[nid][0], Y: coords[nid][1], Demand: demand[nid]})
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			u, v := NodeID(ids[i]), NodeID(ids[j])
			w := euclidean(coords[u], coords[v], weightType)
			if err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return nil, err
			}
		}
	}

	mat, matIDs, err := distmat.BuildDense(g)
	if err != nil {
		return nil, err
	}

	index := make(map[NodeID]int, len(matIDs))
	nodes := make([]NodeID, len(matIDs))
	for i, id := range matIDs {
		nid := NodeID(id)
		index[nid] = i
		nodes[i] = nid
	}

	demandCopy := make(map[NodeID]int, len(demand))
	for id, d := range demand {
		demandCopy[id] = d
		if id != depot && d > capacity {
			return nil, cvrperr.ErrInstanceInfeasible
		}
	}

	coordsCopy := make(map[NodeID][2]float64, len(coords))
	for id, c := range coords {
		coordsCopy[id] = c
	}

	return &Instance{
		name:     name,
		capacity: capacity,
		depot:    depot,
		nodes:    nodes,
		demand:   demandCopy,
		index:    index,
		dist:     mat,
		coords:   coordsCopy,
	}, nil
}

func euclidean(a, b [2]float64, wt EdgeWeightType) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	raw := hypot(dx, dy)
	if wt == EUC2D {
		return floorHalfUp(raw)
	}
	return raw
}
