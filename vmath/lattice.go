package vmath

import "math"

// latticeEpsilon absorbs float error when a span is an exact multiple of step
const latticeEpsilon = 1e-9

// Steps returns the number of points in lo, lo+step, ... that do not exceed hi
// Returns 0 for non-positive step or hi < lo
func Steps(lo, hi, step float64) int {
	if step <= 0 || hi < lo || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0
	}
	return int(math.Floor((hi-lo)/step+latticeEpsilon)) + 1
}

// LatticeAt returns the k-th lattice coordinate
// Computed by multiplication so long sweeps do not accumulate drift
func LatticeAt(lo, step float64, k int) float64 {
	return lo + float64(k)*step
}
