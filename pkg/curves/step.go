package curves

import (
	"fmt"
	"math"
)

const stepSortTolerance = 1e-10

// MakeIntoStep turns paired (xp, yp) samples into a proper step function:
// positions with NaN x are dropped, and among a run of equal x values only
// the last y survives, since that is the step function's final value there.
// xp must be sorted ascending up to a small tolerance. The result may be
// empty.
func MakeIntoStep(xp, yp []float64) ([]float64, []float64, error) {
	if len(xp) != len(yp) {
		return nil, nil, fmt.Errorf("got %d x values for %d y values", len(xp), len(yp))
	}

	xs := make([]float64, 0, len(xp))
	ys := make([]float64, 0, len(yp))
	for i := range xp {
		if !math.IsNaN(xp[i]) {
			xs = append(xs, xp[i])
			ys = append(ys, yp[i])
		}
	}

	for i := 0; i+1 < len(xs); i++ {
		if xs[i+1]-xs[i] < -stepSortTolerance {
			return nil, nil, fmt.Errorf("x values not sorted: %v follows %v", xs[i+1], xs[i])
		}
	}

	outX := xs[:0]
	outY := ys[:0]
	for i := range xs {
		if i+1 == len(xs) || xs[i+1] > xs[i] {
			outX = append(outX, xs[i])
			outY = append(outY, ys[i])
		}
	}
	return outX, outY, nil
}
