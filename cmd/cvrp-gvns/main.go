// Command cvrp-gvns solves a TSPLIB-format CVRP instance with a
// nearest-neighbor construction followed by GVNS, and prints the resulting
// solution's cost, vehicle count, and optional BKS gap.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kavrail/cvrp-gvns/bks"
	"github.com/kavrail/cvrp-gvns/construct"
	"github.com/kavrail/cvrp-gvns/gvns"
	"github.com/kavrail/cvrp-gvns/internal/config"
	"github.com/kavrail/cvrp-gvns/internal/solverlog"
	"github.com/kavrail/cvrp-gvns/plotter"
	"github.com/kavrail/cvrp-gvns/tsplib"
)

// defaultInstancesDir is searched for a .vrp file when --instance/-i is not
// given and the config layer has no instance path configured either
// (spec.md §6: "search Instances/").
const defaultInstancesDir = "Instances"

// findDefaultInstance returns the lexicographically first .vrp file in
// defaultInstancesDir, or "" if the directory is absent or empty.
func findDefaultInstance() string {
	entries, err := os.ReadDir(defaultInstancesDir)
	if err != nil {
		return ""
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".vrp" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(defaultInstancesDir, names[0])
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the testable core of main: it never calls os.Exit itself.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("cvrp-gvns", flag.ContinueOnError)
	instancePath := fs.String("instance", cfg.Instance, "path to a TSPLIB .vrp instance")
	fs.StringVar(instancePath, "i", *instancePath, "shorthand for --instance")
	seed := fs.Int64("seed", cfg.Seed, "PRNG seed (0 = deterministic default)")
	fs.Int64Var(seed, "s", *seed, "shorthand for --seed")
	timeBudget := fs.Duration("time", cfg.TimeBudget, "wall-clock search budget, e.g. 30s")
	fs.DurationVar(timeBudget, "t", *timeBudget, "shorthand for --time")
	iterBudget := fs.Int("iter", cfg.IterBudget, "outer shake-iteration budget (0 = unbounded)")
	plotPath := fs.Bool("plot", cfg.Plot, "render the final solution to <instance>.png")
	fs.BoolVar(plotPath, "p", *plotPath, "shorthand for --plot")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *instancePath == "" {
		*instancePath = findDefaultInstance()
	}
	if *instancePath == "" {
		fmt.Fprintln(os.Stderr, "cvrp-gvns: --instance not given and no .vrp file found under Instances/")
		return 2
	}

	log := solverlog.New(cfg.Log)

	inst, err := tsplib.Load(*instancePath)
	if err != nil {
		log.Error("failed to load instance", "path", *instancePath, "error", err)
		return 1
	}

	initial, err := construct.NearestNeighbor(inst)
	if err != nil {
		log.Error("construction failed", "error", err)
		return 1
	}
	log.Info("constructed initial solution", "cost", initial.Cost, "vehicles", initial.VehicleCount())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	final, stats, err := gvns.Run(ctx, inst, initial, gvns.Options{
		Seed:       *seed,
		TimeBudget: *timeBudget,
		IterBudget: *iterBudget,
	})
	if err != nil && final == nil {
		log.Error("search failed", "error", err)
		return 1
	}

	log.Info("search finished",
		"stopped_by", stats.StoppedBy,
		"iterations", stats.Iterations,
		"accepted", stats.Accepted,
		"start_cost", stats.StartCost,
		"final_cost", stats.FinalCost,
	)

	fmt.Printf("instance: %s\n", inst.Name())
	fmt.Printf("vehicles: %d\n", final.VehicleCount())
	fmt.Printf("cost: %.2f\n", final.Cost)

	if best, ok := bks.Read(*instancePath); ok {
		fmt.Printf("bks: %.2f\n", best)
		fmt.Printf("gap: %.2f%%\n", bks.Gap(final.Cost, best))
	}

	if *plotPath {
		out := *instancePath + ".png"
		if err := plotter.Save(inst, final, out); err != nil {
			log.Warn("failed to render plot", "error", err)
		} else {
			fmt.Printf("plot: %s\n", out)
		}
	}

	return 0
}
