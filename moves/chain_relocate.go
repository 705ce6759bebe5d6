package moves

import (
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// ChainRelocate is Op-D (spec.md §4.3): like Relocate but moves a contiguous
// chain of two nodes [a,b] together, preserving their order, to the best
// position of another route.
func ChainRelocate(sol *solution.Solution, inst *instance.Instance) bool {
	depot := inst.Depot()

	for srcIdx, src := range sol.Routes {
		for i := 0; i+1 < len(src.Nodes); i++ {
			a, b := src.Nodes[i], src.Nodes[i+1]
			prev, _ := neighbors(src, i, depot)

			// removing the pair [a,b] joins prev directly to whatever
			// followed b.
			var follow instance.NodeID
			if i+2 >= len(src.Nodes) {
				follow = depot
			} else {
				follow = src.Nodes[i+2]
			}
			remDelta := inst.Distance(prev, follow) - inst.Distance(prev, a) - inst.Distance(a, b) - inst.Distance(b, follow)

			chainDemand := inst.Demand(a) + inst.Demand(b)

			for dstIdx, dst := range sol.Routes {
				if dstIdx == srcIdx {
					continue
				}
				if dst.Load+chainDemand > inst.Capacity() {
					continue
				}

				bestPos, bestDelta := 0, chainInsertionDelta(inst, dst, 0, a, b)
				for p := 1; p <= len(dst.Nodes); p++ {
					d := chainInsertionDelta(inst, dst, p, a, b)
					if d < bestDelta {
						bestDelta = d
						bestPos = p
					}
				}

				if remDelta+bestDelta < -Epsilon {
					removeChain(inst, src, i)
					insertChainAt(inst, dst, bestPos, a, b)
					sol.Cost += remDelta + bestDelta
					sol.PruneEmpty()
					return true
				}
			}
		}
	}
	return false
}

// removeChain removes the two nodes at positions i, i+1 of route and
// updates Load.
func removeChain(inst *instance.Instance, route *solution.Route, i int) {
	a, b := route.Nodes[i], route.Nodes[i+1]
	route.Load -= inst.Demand(a) + inst.Demand(b)
	route.Nodes = append(route.Nodes[:i], route.Nodes[i+2:]...)
}

// insertChainAt inserts [a,b] at position pos of route, in that order, and
// updates Load.
func insertChainAt(inst *instance.Instance, route *solution.Route, pos int, a, b instance.NodeID) {
	route.Nodes = append(route.Nodes, 0, 0)
	copy(route.Nodes[pos+2:], route.Nodes[pos:])
	route.Nodes[pos] = a
	route.Nodes[pos+1] = b
	route.Load += inst.Demand(a) + inst.Demand(b)
}
