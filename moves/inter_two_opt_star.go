package moves

import (
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// InterTwoOptStar is Op-B (spec.md §4.3): for every ordered pair of distinct
// routes (R1,R2) and every split index i in R1 (including -1 = before first,
// and len-1 = after last) and j in R2 (same convention), swap the tails.
// The trivial i=j=-1 case (swapping entire routes) is skipped.
func InterTwoOptStar(sol *solution.Solution, inst *instance.Instance) bool {
	depot := inst.Depot()

	for r1i, r1 := range sol.Routes {
		pre1, total1 := prefixDemand(inst, r1)

		for r2i, r2 := range sol.Routes {
			if r1i == r2i {
				continue
			}
			pre2, total2 := prefixDemand(inst, r2)

			for i := -1; i <= len(r1.Nodes)-1; i++ {
				u := depotOr(r1, i, depot)
				uNext := depotOr(r1, i+1, depot)
				head1Demand := pre1[i+1]
				tail1Demand := total1 - head1Demand

				for j := -1; j <= len(r2.Nodes)-1; j++ {
					if i == -1 && j == -1 {
						continue
					}
					v := depotOr(r2, j, depot)
					vNext := depotOr(r2, j+1, depot)
					head2Demand := pre2[j+1]
					tail2Demand := total2 - head2Demand

					if head1Demand+tail2Demand > inst.Capacity() {
						continue
					}
					if head2Demand+tail1Demand > inst.Capacity() {
						continue
					}

					oldCost := inst.Distance(u, uNext) + inst.Distance(v, vNext)
					newCost := inst.Distance(u, vNext) + inst.Distance(v, uNext)
					delta := newCost - oldCost

					if delta < -Epsilon {
						applyTailSwap(r1, r2, i, j, head1Demand+tail2Demand, head2Demand+tail1Demand)
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

// prefixDemand returns pre, where pre[t] is the summed demand of
// route.Nodes[0:t], and the route's total demand.
func prefixDemand(inst *instance.Instance, route *solution.Route) ([]int, int) {
	pre := make([]int, len(route.Nodes)+1)
	for i, n := range route.Nodes {
		pre[i+1] = pre[i] + inst.Demand(n)
	}
	return pre, pre[len(route.Nodes)]
}

// applyTailSwap rebuilds r1 as head1+tail2 and r2 as head2+tail1, where
// head1 = r1.Nodes[:i+1], tail1 = r1.Nodes[i+1:], and symmetrically for r2/j.
func applyTailSwap(r1, r2 *solution.Route, i, j, load1, load2 int) {
	head1 := append([]instance.NodeID(nil), r1.Nodes[:i+1]...)
	tail1 := append([]instance.NodeID(nil), r1.Nodes[i+1:]...)
	head2 := append([]instance.NodeID(nil), r2.Nodes[:j+1]...)
	tail2 := append([]instance.NodeID(nil), r2.Nodes[j+1:]...)

	r1.Nodes = append(head1, tail2...)
	r2.Nodes = append(head2, tail1...)
	r1.Load = load1
	r2.Load = load2
}
