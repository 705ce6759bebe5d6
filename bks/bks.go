// Package bks reads the optional best-known-solution sidecar file for an
// instance (spec.md §6): same path with .vrp replaced by .sol, a line
// containing the token "Cost" parsed by taking its last whitespace-separated
// token as a float. Absence or a parse failure is explicitly non-fatal —
// Read reports ok=false rather than returning an error, matching spec.md's
// "the solver runs without a gap display" rule.
package bks

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Read looks up the BKS cost for the instance at vrpPath. ok is false if the
// sidecar is missing, unreadable, or contains no parseable "Cost" line.
func Read(vrpPath string) (cost float64, ok bool) {
	solPath := strings.TrimSuffix(vrpPath, ".vrp") + ".sol"

	f, err := os.Open(solPath)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "Cost") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		v, perr := strconv.ParseFloat(fields[len(fields)-1], 64)
		if perr != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// Gap returns the percentage gap of cost above best, i.e. 100*(cost-best)/best.
func Gap(cost, best float64) float64 {
	if best == 0 {
		return 0
	}
	return 100 * (cost - best) / best
}
