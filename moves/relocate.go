package moves

import (
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// Relocate is Op-C (spec.md §4.3): for each customer, evaluate removing it
// from its current route and re-inserting it at its best position in every
// other route, accepting the first combined move with delta < -Epsilon.
func Relocate(sol *solution.Solution, inst *instance.Instance) bool {
	for srcIdx, src := range sol.Routes {
		for i, node := range src.Nodes {
			remDelta := removalDelta(inst, src, i)
			demand := inst.Demand(node)

			for dstIdx, dst := range sol.Routes {
				if dstIdx == srcIdx {
					continue
				}
				if dst.Load+demand > inst.Capacity() {
					continue
				}

				pos, insDelta := bestInsertion(inst, dst, node)
				if remDelta+insDelta < -Epsilon {
					removeAt(inst, src, i)
					insertAt(inst, dst, pos, node)
					sol.Cost += remDelta + insDelta
					sol.PruneEmpty()
					return true
				}
			}
		}
	}
	return false
}
