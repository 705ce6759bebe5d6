// Package construct implements the deterministic constructive seed (spec.md
// §4.2, C3): nearest-neighbor route building, ties broken by ascending node
// id, candidates scanned in id order with strict-less-than on distance.
package construct

import (
	"github.com/kavrail/cvrp-gvns/cvrperr"
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// NearestNeighbor builds the initial feasible solution for inst.
//
// Algorithm (spec.md §4.2): start from the depot with an empty route and
// zero load. Repeatedly pick the unvisited customer minimizing
// distance(current, candidate) among those whose demand fits the remaining
// capacity; candidates are iterated in ascending id order with a strict
// less-than comparison, so the first-seen minimum wins ties. When no
// candidate fits: close the current route (if non-empty) and start a new
// one; if the route is empty, the minimum-demand unvisited customer exceeds
// capacity and the instance is infeasible.
//
// Output is feasible by construction; Recompute is called once before
// return, the first of the two authoritative-cost points spec.md §4.1
// mandates.
func NearestNeighbor(inst *instance.Instance) (*solution.Solution, error) {
	customers := inst.Customers()
	unvisited := make(map[instance.NodeID]bool, len(customers))
	for _, c := range customers {
		unvisited[c] = true
	}

	var routes [][]instance.NodeID
	var current []instance.NodeID
	load := 0
	loc := inst.Depot()

	for len(unvisited) > 0 {
		best, found := instance.NodeID(0), false
		minDist := 0.0

		for _, cand := range customers {
			if !unvisited[cand] {
				continue
			}
			if load+inst.Demand(cand) > inst.Capacity() {
				continue
			}
			d := inst.Distance(loc, cand)
			if !found || d < minDist {
				minDist = d
				best = cand
				found = true
			}
		}

		if found {
			current = append(current, best)
			load += inst.Demand(best)
			loc = best
			delete(unvisited, best)
			continue
		}

		if len(current) == 0 {
			return nil, cvrperr.ErrInstanceInfeasible
		}
		routes = append(routes, current)
		current = nil
		load = 0
		loc = inst.Depot()
	}
	if len(current) > 0 {
		routes = append(routes, current)
	}

	return solution.New(inst, routes), nil
}
