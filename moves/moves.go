// Package moves implements the five delta-evaluated move operators of the
// CVRP local search: intra-2-opt, inter-2-opt*, relocate, chain-relocate,
// and inter-route swap. Every operator is first-improvement: it returns
// true and mutates sol on the first candidate with delta < -Epsilon (in its
// declared iteration order), or returns false leaving sol untouched. This
// mirrors a classic TSP 2-opt contract (delta evaluation, first-improvement
// restart, epsilon guard) generalized across routes and a capacity
// constraint a single-tour solver never had to carry.
package moves

import (
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/solution"
)

// Epsilon is solution.Epsilon, the acceptance guard every operator in this
// package applies (a move is taken only when its delta < -Epsilon).
const Epsilon = solution.Epsilon

// Op is the shared signature for all five move operators.
type Op func(sol *solution.Solution, inst *instance.Instance) bool

// neighbors returns the previous and next node of position i in route,
// substituting the depot at the virtual endpoints: every operator below
// treats the depot as both predecessor of position 0 and successor of the
// last position.
func neighbors(route *solution.Route, i int, depot instance.NodeID) (prev, next instance.NodeID) {
	if i == 0 {
		prev = depot
	} else {
		prev = route.Nodes[i-1]
	}
	if i == len(route.Nodes)-1 {
		next = depot
	} else {
		next = route.Nodes[i+1]
	}
	return prev, next
}

// removalDelta is the cost change of removing the node at position i from
// route (without yet mutating it): new edge (prev,next) replaces
// (prev,node)+(node,next).
func removalDelta(inst *instance.Instance, route *solution.Route, i int) float64 {
	depot := inst.Depot()
	node := route.Nodes[i]
	prev, next := neighbors(route, i, depot)
	return inst.Distance(prev, next) - inst.Distance(prev, node) - inst.Distance(node, next)
}

// insertionDelta is the cost change of inserting node between position
// pos-1 and pos of route (pos == len(route.Nodes) means "append at the
// end"); it does not mutate route.
func insertionDelta(inst *instance.Instance, route *solution.Route, pos int, node instance.NodeID) float64 {
	depot := inst.Depot()
	var prev, next instance.NodeID
	if pos == 0 {
		prev = depot
	} else {
		prev = route.Nodes[pos-1]
	}
	if pos == len(route.Nodes) {
		next = depot
	} else {
		next = route.Nodes[pos]
	}
	return inst.Distance(prev, node) + inst.Distance(node, next) - inst.Distance(prev, next)
}

// chainInsertionDelta is insertionDelta for a 2-node chain [a,b] inserted
// (in that order) at position pos of route.
func chainInsertionDelta(inst *instance.Instance, route *solution.Route, pos int, a, b instance.NodeID) float64 {
	depot := inst.Depot()
	var prev, next instance.NodeID
	if pos == 0 {
		prev = depot
	} else {
		prev = route.Nodes[pos-1]
	}
	if pos == len(route.Nodes) {
		next = depot
	} else {
		next = route.Nodes[pos]
	}
	return inst.Distance(prev, a) + inst.Distance(a, b) + inst.Distance(b, next) - inst.Distance(prev, next)
}

// bestInsertion scans every position of route for the minimum insertionDelta
// of inserting node, returning the position and its delta.
func bestInsertion(inst *instance.Instance, route *solution.Route, node instance.NodeID) (pos int, delta float64) {
	best := insertionDelta(inst, route, 0, node)
	bestPos := 0
	for p := 1; p <= len(route.Nodes); p++ {
		d := insertionDelta(inst, route, p, node)
		if d < best {
			best = d
			bestPos = p
		}
	}
	return bestPos, best
}

// insertAt inserts node into route at position pos and updates Load.
func insertAt(inst *instance.Instance, route *solution.Route, pos int, node instance.NodeID) {
	route.Nodes = append(route.Nodes, 0)
	copy(route.Nodes[pos+1:], route.Nodes[pos:])
	route.Nodes[pos] = node
	route.Load += inst.Demand(node)
}

// removeAt removes the node at position i and updates Load.
func removeAt(inst *instance.Instance, route *solution.Route, i int) instance.NodeID {
	node := route.Nodes[i]
	route.Load -= inst.Demand(node)
	route.Nodes = append(route.Nodes[:i], route.Nodes[i+1:]...)
	return node
}

// All lists the five operators in their fixed VND iteration order
// (intra-2-opt, inter-2-opt*, chain-relocate, relocate, swap).
// localsearch.Descend applies these.
func All() []Op {
	return []Op{IntraTwoOpt, InterTwoOptStar, ChainRelocate, Relocate, Swap}
}
