package moves

import (
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// IntraTwoOpt is Op-A: for each route, for each pair of non-adjacent edges
// (u,v) and (x,y) with v..x the middle segment, evaluate reversing [v..x].
// The virtual depot endpoints participate as the predecessor of position 0
// and the successor of the last position.
//
// Same i/k cut-index convention and delta formula as a classic TSP 2-opt,
// generalized to operate per-route inside a multi-route solution instead of
// on a single closed tour.
func IntraTwoOpt(sol *solution.Solution, inst *instance.Instance) bool {
	depot := inst.Depot()

	for _, route := range sol.Routes {
		L := len(route.Nodes)
		if L < 3 {
			continue
		}

		for i := 0; i <= L-2; i++ {
			a := depotOr(route, i-1, depot)
			b := route.Nodes[i]

			for k := i + 1; k <= L-1; k++ {
				c := route.Nodes[k]
				d := depotOr(route, k+1, depot)

				oldCost := inst.Distance(a, b) + inst.Distance(c, d)
				newCost := inst.Distance(a, c) + inst.Distance(b, d)
				delta := newCost - oldCost

				if delta < -Epsilon {
					reverseSegment(route, i, k)
					sol.Cost += delta
					sol.PruneEmpty()
					return true
				}
			}
		}
	}
	return false
}

// depotOr returns route.Nodes[i] if i is a valid index, else depot (used for
// the virtual endpoints at i == -1 and i == len(route.Nodes)).
func depotOr(route *solution.Route, i int, depot instance.NodeID) instance.NodeID {
	if i < 0 || i >= len(route.Nodes) {
		return depot
	}
	return route.Nodes[i]
}

// reverseSegment reverses route.Nodes[i:k+1] in place.
func reverseSegment(route *solution.Route, i, k int) {
	for l, r := i, k; l < r; l, r = l+1, r-1 {
		route.Nodes[l], route.Nodes[r] = route.Nodes[r], route.Nodes[l]
	}
}
