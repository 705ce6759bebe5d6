// Package cvrperr defines the sentinel error taxonomy shared by every package
// in this module: instance loading, construction, local search, shaking, and
// the GVNS driver all return (or wrap) one of these values rather than ad-hoc
// fmt.Errorf strings. Callers use errors.Is against these sentinels.
package cvrperr

import "errors"

// Input / instance errors. These abort a run before the solver starts.
// ErrInstanceInfeasible is returned by instance.New (and so by tsplib.Load)
// and by construct.NearestNeighbor; shake.Recreate returns no error.
var (
	// ErrFileNotFound indicates the requested .vrp file does not exist.
	ErrFileNotFound = errors.New("cvrp: instance file not found")

	// ErrParse indicates a malformed TSPLIB header, a missing section, a
	// dimension/coordinate-count mismatch, a missing demand entry, or an
	// unresolvable depot. Returned wrapped via fmt.Errorf("...: %w", ErrParse)
	// so the message can name the offending line or key.
	ErrParse = errors.New("cvrp: instance parse error")

	// ErrInstanceInfeasible indicates a customer's demand exceeds vehicle
	// capacity, so no feasible route can ever contain it.
	ErrInstanceInfeasible = errors.New("cvrp: instance infeasible (demand exceeds capacity)")
)

// Solution-shape errors. These signal a bug in an operator or in test
// fixtures; production code paths should never trigger them in practice
// because every mutator maintains the invariants they check.
var (
	// ErrPartitionViolated indicates a customer is missing or duplicated
	// across routes.
	ErrPartitionViolated = errors.New("cvrp: route partition invariant violated")

	// ErrCapacityViolated indicates a route's load exceeds instance capacity.
	ErrCapacityViolated = errors.New("cvrp: route capacity invariant violated")

	// ErrCostDrift indicates the cached solution cost disagrees with a ground
	// truth recomputation by more than the configured epsilon.
	ErrCostDrift = errors.New("cvrp: cached cost diverged from recomputed cost")

	// ErrEmptyRoute indicates a route with zero customers was observed where
	// only non-empty routes are allowed.
	ErrEmptyRoute = errors.New("cvrp: empty route present in solution")
)

// ErrDimensionMismatch indicates a shape mismatch in a distance matrix or
// node/demand slice (non-square matrix, index out of range, etc).
var ErrDimensionMismatch = errors.New("cvrp: dimension mismatch")
