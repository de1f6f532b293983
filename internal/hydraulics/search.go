package hydraulics

import "math"

// Search steps.
const (
	DepthStep         = 0.0001     // rectangular/trapezoidal depth and width (m)
	FineDepthStep     = 0.00001    // circular depth/diameter and critical searches (m)
	SlopeStep         = 0.00000001 // rectangular/trapezoidal slope
	PipeSlopeStep     = 0.0000001  // circular and irregular slope
	coarseScanSamples = 512
)

// maxSearchIterations bounds every trial search. Doubling covers 2^64 grid
// steps and bisection needs at most as many halvings, so well-posed inputs
// finish far below this.
const maxSearchIterations = 200

type evalFunc func(x float64) (float64, error)

func gridValue(lo, step float64, k int64) float64 {
	return lo + float64(k)*step
}

// searchUnbounded returns the smallest lo + k*step (k >= 1) for which
// f >= target. f must be non-decreasing. The bracket is found by doubling k
// and then narrowed by bisection on k.
func searchUnbounded(quantity string, f evalFunc, target, lo, step float64) (float64, int, error) {
	iterations := 0

	var below int64 // largest k known to give f < target (0 = lo itself)
	k := int64(1)
	for {
		iterations++
		if iterations > maxSearchIterations || k <= 0 || k > math.MaxInt64/2 {
			return 0, iterations, &ConvergenceError{Quantity: quantity, Iterations: iterations}
		}
		v, err := f(gridValue(lo, step, k))
		if err != nil {
			return 0, iterations, err
		}
		if v >= target {
			break
		}
		below = k
		k *= 2
	}

	x, n, err := bisectGrid(quantity, f, target, lo, step, below, k, iterations)
	return x, n, err
}

// searchBounded returns the smallest grid value lo + k*step strictly below
// hi for which f >= target. f need not be monotonic over the whole range:
// a coarse forward scan finds the first sample that reaches the target and
// bisection resolves the grid value inside that bracket.
func searchBounded(quantity string, f evalFunc, target, lo, hi, step float64) (float64, int, error) {
	kMax := int64(math.Ceil((hi-lo)/step)) - 1
	for kMax > 0 && gridValue(lo, step, kMax) >= hi {
		kMax--
	}
	if kMax < 1 {
		return 0, 0, &ConvergenceError{Quantity: quantity, msg: quantity + " search range is empty"}
	}

	stride := kMax / coarseScanSamples
	if stride < 1 {
		stride = 1
	}

	iterations := 0
	var below int64
	for k := stride; ; k += stride {
		if k > kMax {
			k = kMax
		}
		iterations++
		v, err := f(gridValue(lo, step, k))
		if err != nil {
			return 0, iterations, err
		}
		if v >= target {
			return bisectGrid(quantity, f, target, lo, step, below, k, iterations)
		}
		if k == kMax {
			return 0, iterations, &ConvergenceError{
				Quantity:   quantity,
				Iterations: iterations,
				msg:        quantity + " is not reached within the section",
			}
		}
		below = k
	}
}

// bisectGrid narrows (below, above] to the smallest k with f >= target,
// given f(k=below) < target <= f(k=above).
func bisectGrid(quantity string, f evalFunc, target, lo, step float64, below, above int64, iterations int) (float64, int, error) {
	for above-below > 1 {
		iterations++
		if iterations > maxSearchIterations+coarseScanSamples {
			return 0, iterations, &ConvergenceError{Quantity: quantity, Iterations: iterations}
		}
		mid := below + (above-below)/2
		v, err := f(gridValue(lo, step, mid))
		if err != nil {
			return 0, iterations, err
		}
		if v >= target {
			above = mid
		} else {
			below = mid
		}
	}
	return gridValue(lo, step, above), iterations, nil
}
