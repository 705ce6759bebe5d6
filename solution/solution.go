// Package solution implements the CVRP solution model: an unordered
// multiset of routes covering every customer exactly once, with a cached
// cost that operators keep consistent via delta updates and that is
// resynchronized by Recompute at exactly two points (after the constructive
// seed, and at the end of every shake).
package solution

import (
	"math"

	"github.com/kavrail/cvrp-gvns/cvrperr"
	"github.com/kavrail/cvrp-gvns/instance"
)

// Epsilon is the tolerance used by this package, moves and gvns for both
// move-acceptance and cost-coherence checks (ε = 10^-3). This is coarser than the 1e-9/1e-12 tolerances common
// in continuous-distance solvers because CVRP distances here are
// integer-rounded (EUC_2D), so cost drift below 1e-3 carries no signal.
const Epsilon = 1e-3

// Route is an ordered sequence of customer ids; the depot is implicit at
// both ends. Load is a cache of the sum of Nodes' demands, maintained
// incrementally by every mutator in package moves instead of being rescanned
// on every capacity check.
type Route struct {
	Nodes []instance.NodeID
	Load  int
}

// Len reports the number of customers on the route.
func (r *Route) Len() int { return len(r.Nodes) }

// Empty reports whether the route has no customers.
func (r *Route) Empty() bool { return len(r.Nodes) == 0 }

// clone returns a deep copy of r.
func (r *Route) clone() *Route {
	nodes := make([]instance.NodeID, len(r.Nodes))
	copy(nodes, r.Nodes)
	return &Route{Nodes: nodes, Load: r.Load}
}

// Solution is a multiset of routes covering every customer exactly once.
type Solution struct {
	Routes []*Route
	Cost   float64
}

// New wraps routes (recomputing load caches) into a Solution whose Cost is
// computed from scratch. Empty routes are pruned before they are observed.
func New(inst *instance.Instance, routeNodes [][]instance.NodeID) *Solution {
	sol := &Solution{}
	for _, nodes := range routeNodes {
		if len(nodes) == 0 {
			continue
		}
		load := 0
		for _, n := range nodes {
			load += inst.Demand(n)
		}
		cp := make([]instance.NodeID, len(nodes))
		copy(cp, nodes)
		sol.Routes = append(sol.Routes, &Route{Nodes: cp, Load: load})
	}
	_ = sol.Recompute(inst)
	return sol
}

// VehicleCount returns the number of non-empty routes.
func (s *Solution) VehicleCount() int { return len(s.Routes) }

// Clone returns a deep copy: a unique mutable handle. Only the GVNS driver
// clones a Solution: once at the start of Run to copy the initial solution,
// then exactly once per outer iteration. An accepted candidate becomes the
// new best without another copy.
func (s *Solution) Clone() *Solution {
	out := &Solution{Routes: make([]*Route, len(s.Routes)), Cost: s.Cost}
	for i, r := range s.Routes {
		out.Routes[i] = r.clone()
	}
	return out
}

// RouteCost computes depot->...->depot distance for a single route from
// scratch. Used by Recompute and by tests; move operators must not call this
// in a hot loop (they track deltas instead).
func RouteCost(inst *instance.Instance, route *Route) float64 {
	if len(route.Nodes) == 0 {
		return 0
	}
	depot := inst.Depot()
	cost := inst.Distance(depot, route.Nodes[0])
	for i := 0; i+1 < len(route.Nodes); i++ {
		cost += inst.Distance(route.Nodes[i], route.Nodes[i+1])
	}
	cost += inst.Distance(route.Nodes[len(route.Nodes)-1], depot)
	return cost
}

// Recompute is the authoritative ground-truth cost computation: it resyncs
// Cost from scratch and is invoked at exactly two points:
// immediately after the constructive seed (construct.NearestNeighbor), and
// at the end of every shake (shake.Shake). It also prunes empty routes and
// refreshes every route's Load cache, since shake's destructive ruin phase
// does not maintain Load itself.
func (s *Solution) Recompute(inst *instance.Instance) error {
	nonEmpty := s.Routes[:0]
	total := 0.0
	for _, r := range s.Routes {
		if len(r.Nodes) == 0 {
			continue
		}
		load := 0
		for _, n := range r.Nodes {
			load += inst.Demand(n)
		}
		r.Load = load
		total += RouteCost(inst, r)
		nonEmpty = append(nonEmpty, r)
	}
	s.Routes = nonEmpty
	s.Cost = total
	return nil
}

// Equal reports whether s and other have the same routes in the same order,
// each with the same customer sequence, and costs within Epsilon of each
// other. It is used only by tests checking the determinism law (spec.md
// §8: identical input, seed, and budgets produce identical solutions,
// including route ordering).
func (s *Solution) Equal(other *Solution) bool {
	if len(s.Routes) != len(other.Routes) {
		return false
	}
	if math.Abs(s.Cost-other.Cost) > Epsilon {
		return false
	}
	for i, r := range s.Routes {
		o := other.Routes[i]
		if r.Load != o.Load || len(r.Nodes) != len(o.Nodes) {
			return false
		}
		for j, n := range r.Nodes {
			if o.Nodes[j] != n {
				return false
			}
		}
	}
	return true
}

// PruneEmpty removes any route with zero customers. Move operators call this
// after applying a move that may have emptied a route.
func (s *Solution) PruneEmpty() {
	kept := s.Routes[:0]
	for _, r := range s.Routes {
		if len(r.Nodes) > 0 {
			kept = append(kept, r)
		}
	}
	s.Routes = kept
}

// CheckInvariants verifies the four universal invariants of a valid
// solution: partition, capacity, cost coherence (within Epsilon), and no
// empty routes.
func (s *Solution) CheckInvariants(inst *instance.Instance) error {
	seen := make(map[instance.NodeID]bool)
	for _, r := range s.Routes {
		if len(r.Nodes) == 0 {
			return cvrperr.ErrEmptyRoute
		}
		load := 0
		for _, n := range r.Nodes {
			if seen[n] {
				return cvrperr.ErrPartitionViolated
			}
			seen[n] = true
			load += inst.Demand(n)
		}
		if load > inst.Capacity() {
			return cvrperr.ErrCapacityViolated
		}
		if load != r.Load {
			return cvrperr.ErrCapacityViolated
		}
	}
	for _, c := range inst.Customers() {
		if !seen[c] {
			return cvrperr.ErrPartitionViolated
		}
	}

	recomputed := 0.0
	for _, r := range s.Routes {
		recomputed += RouteCost(inst, r)
	}
	if math.Abs(recomputed-s.Cost) > Epsilon {
		return cvrperr.ErrCostDrift
	}
	return nil
}
