package moves

import (
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// Swap is Op-E (spec.md §4.3): for every pair of customers u (in route R1)
// and v (in a different route R2), evaluate exchanging their positions,
// accepting the first exchange with delta < -Epsilon and both routes still
// within capacity.
func Swap(sol *solution.Solution, inst *instance.Instance) bool {
	depot := inst.Depot()

	for r1i, r1 := range sol.Routes {
		for r2i, r2 := range sol.Routes {
			if r2i <= r1i {
				continue
			}

			for i, u := range r1.Nodes {
				uPrev, uNext := neighbors(r1, i, depot)
				uDemand := inst.Demand(u)

				for j, v := range r2.Nodes {
					vPrev, vNext := neighbors(r2, j, depot)
					vDemand := inst.Demand(v)

					if r1.Load-uDemand+vDemand > inst.Capacity() {
						continue
					}
					if r2.Load-vDemand+uDemand > inst.Capacity() {
						continue
					}

					oldCost := inst.Distance(uPrev, u) + inst.Distance(u, uNext) +
						inst.Distance(vPrev, v) + inst.Distance(v, vNext)

					// u and v may be adjacent across routes only through the
					// depot, never directly, since r1 != r2: no shared-edge
					// double count to guard against here.
					newCost := inst.Distance(uPrev, v) + inst.Distance(v, uNext) +
						inst.Distance(vPrev, u) + inst.Distance(u, vNext)

					delta := newCost - oldCost
					if delta < -Epsilon {
						r1.Nodes[i] = v
						r2.Nodes[j] = u
						r1.Load += vDemand - uDemand
						r2.Load += uDemand - vDemand
						sol.Cost += delta
						sol.PruneEmpty()
						return true
					}
				}
			}
		}
	}
	return false
}
