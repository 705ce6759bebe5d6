// Package gvns implements the General Variable Neighborhood Search driver:
// alternate strict VND descent with ruin-and-recreate shaking, escalating
// the ruin fraction after sustained stagnation, until a time or iteration
// budget is exhausted or the caller cancels via context.
package gvns

import (
	"context"
	"math/rand"
	"time"

	"github.com/kavrail/cvrp-gvns/instance"
	"github.com/kavrail/cvrp-gvns/internal/rngutil"
	"github.com/kavrail/cvrp-gvns/localsearch"
	"github.com/kavrail/cvrp-gvns/shake"
	"github.com/kavrail/cvrp-gvns/solution"
)

// stagnationThreshold is the number of consecutive non-improving iterations
// after which the ruin fraction escalates from lowRuinFraction to
// highRuinFraction.
const stagnationThreshold = 50

const (
	lowRuinFraction  = 0.10
	highRuinFraction = 0.30
)

// Options configures a Run.
type Options struct {
	// Seed seeds the single PRNG instance threaded through the whole run.
	// 0 maps to a deterministic default, never wall-clock time.
	Seed int64

	// TimeBudget bounds wall-clock time; zero means no time limit.
	TimeBudget time.Duration

	// IterBudget bounds the number of outer shake iterations; zero means
	// no iteration limit. At least one of TimeBudget/IterBudget should be
	// set, or Run relies solely on ctx cancellation.
	IterBudget int
}

// Stats reports what a Run did.
type Stats struct {
	Iterations  int
	Accepted    int
	StartCost   float64
	FinalCost   float64
	StoppedBy   string // "time", "iter", "context", or "" when Run returns a shake error
}

// compatibleTimeBudget guards against degenerate time budgets (negative or
// absurdly large durations that would overflow time.Time arithmetic).
func compatibleTimeBudget(d time.Duration) bool {
	return d > 0 && d < (1<<62)
}

// Run executes GVNS starting from initial (not mutated; a clone is taken).
// Per spec.md §4.6's pseudocode, no descend step runs before the loop: the
// very first iteration shakes the unoptimized initial solution and compares
// the shaken-and-descended clone against it, exactly as the un-descended
// incumbent. Each subsequent iteration alternates shake -> descend,
// accepting the result only if it strictly improves on the best found so
// far; otherwise the best solution is kept and the next shake starts from
// it again.
//
// Stops when: ctx is cancelled, opts.TimeBudget elapses (if set), or
// opts.IterBudget outer iterations have run (if set). At least one stop
// condition should be configured; if neither is, Run depends entirely on
// ctx for termination.
func Run(ctx context.Context, inst *instance.Instance, initial *solution.Solution, opts Options) (*solution.Solution, Stats, error) {
	rng := rngutil.New(opts.Seed)

	best := initial.Clone()

	stats := Stats{StartCost: best.Cost}

	var deadline time.Time
	useDeadline := compatibleTimeBudget(opts.TimeBudget)
	if useDeadline {
		deadline = time.Now().Add(opts.TimeBudget)
	}

	stagnation := 0

	for iter := 0; ; iter++ {
		if opts.IterBudget > 0 && iter >= opts.IterBudget {
			stats.StoppedBy = "iter"
			break
		}
		if useDeadline && time.Now().After(deadline) {
			stats.StoppedBy = "time"
			break
		}
		select {
		case <-ctx.Done():
			stats.StoppedBy = "context"
			stats.Iterations = iter
			stats.FinalCost = best.Cost
			return best, stats, ctx.Err()
		default:
		}

		p := ruinFraction(stagnation)

		candidate := best.Clone()
		if err := shakeOnce(candidate, inst, p, rng); err != nil {
			return nil, stats, err
		}
		localsearch.Descend(candidate, inst)

		if candidate.Cost < best.Cost-solution.Epsilon {
			best = candidate
			stats.Accepted++
			stagnation = 0
		} else {
			stagnation++
		}

		stats.Iterations = iter + 1
	}

	stats.FinalCost = best.Cost
	return best, stats, nil
}

// ruinFraction escalates from lowRuinFraction to highRuinFraction once
// stagnation exceeds stagnationThreshold consecutive non-improving
// iterations.
func ruinFraction(stagnation int) float64 {
	if stagnation > stagnationThreshold {
		return highRuinFraction
	}
	return lowRuinFraction
}

// shakeOnce is a thin indirection so Run's loop reads as the driver's state
// machine rather than interleaving shake's internals.
func shakeOnce(sol *solution.Solution, inst *instance.Instance, p float64, rng *rand.Rand) error {
	return shake.Shake(sol, inst, p, rng)
}
