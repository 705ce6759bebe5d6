// Package shake implements ruin-and-recreate perturbation (C6, spec.md
// §4.5): remove a uniformly random subset of customers from the solution
// (Ruin), then greedily reinsert them in shuffled order at each one's best
// position across all routes, including starting a new route when no
// existing route can take it cheaper (Recreate).
package shake

import (
	"math"
	"math/rand"

	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/internal/rngutil"
	"github.com/kavrail/cvrp-gvns/solution"
)

// minRemoved is the floor on the ruin set size (spec.md §4.5's
// k = max(4, floor(M*p))), so shaking still perturbs small instances.
const minRemoved = 4

// RemovalCount returns the number of customers Ruin removes for a solution
// carrying m total customers and a ruin fraction p.
func RemovalCount(m int, p float64) int {
	k := int(math.Floor(float64(m) * p))
	if k < minRemoved {
		k = minRemoved
	}
	if k > m {
		k = m
	}
	return k
}

// Ruin removes k uniformly random customers (without replacement, every
// customer equally likely per spec.md §4.5) from sol, returning the removed
// node ids. Empty routes left behind are pruned immediately so Recreate
// never has to special-case them.
func Ruin(sol *solution.Solution, k int, rng *rand.Rand) []instance.NodeID {
	all := allCustomers(sol)
	if k > len(all) {
		k = len(all)
	}
	idx := rngutil.SampleWithoutReplacement(len(all), k, rng)

	toRemove := make(map[instance.NodeID]bool, k)
	for _, i := range idx {
		toRemove[all[i]] = true
	}

	removed := make([]instance.NodeID, 0, k)
	for _, route := range sol.Routes {
		kept := route.Nodes[:0]
		for _, n := range route.Nodes {
			if toRemove[n] {
				removed = append(removed, n)
				continue
			}
			kept = append(kept, n)
		}
		route.Nodes = kept
	}
	sol.PruneEmpty()
	return removed
}

// allCustomers flattens every route's nodes into one slice.
func allCustomers(sol *solution.Solution) []instance.NodeID {
	var all []instance.NodeID
	for _, route := range sol.Routes {
		all = append(all, route.Nodes...)
	}
	return all
}

// Recreate reinserts removed (visited in a random shuffle order, per
// spec.md §4.5) into sol, one at a time, at the globally cheapest feasible
// position across every existing route; a new singleton route is opened
// instead when no existing route can take the customer within capacity or
// when the singleton route is strictly cheaper. Route Load caches are
// refreshed from the routes' nodes first, since Ruin does not maintain them.
func Recreate(sol *solution.Solution, inst *instance.Instance, removed []instance.NodeID, rng *rand.Rand) {
	for _, route := range sol.Routes {
		route.Load = 0
		for _, n := range route.Nodes {
			route.Load += inst.Demand(n)
		}
	}

	idx := make([]int, len(removed))
	for i := range idx {
		idx[i] = i
	}
	rngutil.ShuffleInts(idx, rng)

	for _, i := range idx {
		insertBest(sol, inst, removed[i])
	}
}

// insertBest inserts node at the cheapest feasible position across sol's
// existing routes, or opens a new route if none has spare capacity or if
// the singleton route (depot -> node -> depot) is strictly cheaper.
func insertBest(sol *solution.Solution, inst *instance.Instance, node instance.NodeID) {
	demand := inst.Demand(node)

	bestRoute := -1
	bestPos := 0
	bestDelta := math.Inf(1)

	for ri, route := range sol.Routes {
		if route.Load+demand > inst.Capacity() {
			continue
		}
		pos, delta := scanInsertion(inst, route, node)
		if delta < bestDelta {
			bestDelta = delta
			bestPos = pos
			bestRoute = ri
		}
	}

	newRouteDelta := inst.Distance(inst.Depot(), node) + inst.Distance(node, inst.Depot())
	if bestRoute == -1 || newRouteDelta < bestDelta {
		sol.Routes = append(sol.Routes, &solution.Route{
			Nodes: []instance.NodeID{node},
			Load:  demand,
		})
		sol.Cost += newRouteDelta
		return
	}

	route := sol.Routes[bestRoute]
	route.Nodes = append(route.Nodes, 0)
	copy(route.Nodes[bestPos+1:], route.Nodes[bestPos:])
	route.Nodes[bestPos] = node
	route.Load += demand
	sol.Cost += bestDelta
}

// scanInsertion finds the cheapest position in route to insert node.
func scanInsertion(inst *instance.Instance, route *solution.Route, node instance.NodeID) (pos int, delta float64) {
	depot := inst.Depot()
	best := math.Inf(1)
	bestPos := 0

	for p := 0; p <= len(route.Nodes); p++ {
		var prev, next instance.NodeID
		if p == 0 {
			prev = depot
		} else {
			prev = route.Nodes[p-1]
		}
		if p == len(route.Nodes) {
			next = depot
		} else {
			next = route.Nodes[p]
		}
		d := inst.Distance(prev, node) + inst.Distance(node, next) - inst.Distance(prev, next)
		if d < best {
			best = d
			bestPos = p
		}
	}
	return bestPos, best
}

// Shake performs one ruin-recreate cycle in place and resyncs sol.Cost from
// ground truth afterward, matching spec.md §4.1's "Cost is ground truth
// after every structural rebuild" rule.
func Shake(sol *solution.Solution, inst *instance.Instance, p float64, rng *rand.Rand) error {
	m := len(allCustomers(sol))
	k := RemovalCount(m, p)

	removed := Ruin(sol, k, rng)
	Recreate(sol, inst, removed, rng)

	return sol.Recompute(inst)
}
