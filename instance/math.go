package instance

import "math"

// hypot is a thin alias kept in its own file so the rounding rule below reads
// as a single, auditable unit — exactly the EUC_2D behavior spec.md §3/§8
// pins down (and the property original_source/CVRP_Instance.py implements as
// int(math.hypot(dx,dy)+0.5)).
func hypot(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// floorHalfUp rounds x to the nearest integer, with ties (x.5) rounding up,
// matching TSPLIB's EUC_2D convention exactly.
func floorHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
