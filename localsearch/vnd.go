// Package localsearch implements Variable Neighborhood Descent: repeatedly
// apply the move operators of package moves in a fixed order, restarting
// from the first operator whenever one accepts an improving move, until a
// full pass over every operator finds nothing.
package localsearch

import (
	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/moves"
	"github.com/kavrail/cvrp-gvns/solution"
)

// Descend runs VND on sol in place until it reaches a local optimum with
// respect to every operator in moves.All, applied in their fixed order. It
// returns the number of accepted moves.
//
// Generalizes a single-operator first-improvement-then-restart contract to
// a fixed sequence of five: an accepted move at operator k restarts scanning
// from operator 0, since an improvement can open up new candidates for
// operators already passed over.
func Descend(sol *solution.Solution, inst *instance.Instance) int {
	ops := moves.All()
	accepted := 0

	for {
		improvedThisPass := false
		for _, op := range ops {
			if op(sol, inst) {
				accepted++
				improvedThisPass = true
				break
			}
		}
		if !improvedThisPass {
			return accepted
		}
	}
}
