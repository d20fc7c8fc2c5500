package curves

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PRGCurve computes the precision-recall-gain curve with an optional
// replicate weight matrix. Gains express precision and recall relative to the
// always-positive baseline classifier, which makes areas comparable across
// class balances.
//
// As in RecallPrecisionCurve, the sentinel point's precision gain is replaced
// by the value at the first real threshold. Recall gain is verified to be
// non-decreasing and then clipped below at exactly 0: negative gain means no
// better than baseline. The point list is never truncated, so the output
// shape matches the other curve derivers; wherever recall gain was clipped,
// no bound holds on precision gain.
func PRGCurve(yTrue []bool, yScore []float64, sampleWeight *mat.Dense) (recallGain, precisionGain *mat.Dense, thresholds []float64, err error) {
	fps, tps, thresholds, err := BinaryClfCurve(yTrue, yScore, sampleWeight)
	if err != nil {
		return nil, nil, nil, err
	}
	rows, cols := tps.Dims()
	last := rows - 1

	recallGain = mat.NewDense(rows, cols, nil)
	precisionGain = mat.NewDense(rows, cols, nil)
	for j := range cols {
		nNeg := fps.At(last, j)
		nPos := tps.At(last, j)
		for i := range rows {
			tp := tps.At(i, j)
			fp := fps.At(i, j)
			fn := nPos - tp
			den := nNeg * tp
			recallGain.Set(i, j, 1-nPos*fn/den)
			precisionGain.Set(i, j, 1-nPos*fp/den)
		}
		precisionGain.Set(0, j, precisionGain.At(1, j))
	}

	// Recall gain is non-decreasing by construction; a violation means the
	// counts upstream were corrupted.
	for j := range cols {
		for i := 1; i < rows; i++ {
			prev, cur := recallGain.At(i-1, j), recallGain.At(i, j)
			if math.IsNaN(prev) || math.IsNaN(cur) {
				continue
			}
			if cur < prev {
				return nil, nil, nil, fmt.Errorf("recall gain decreases at row %d column %d", i, j)
			}
		}
	}

	for j := range cols {
		for i := range rows {
			if recallGain.At(i, j) < 0 {
				recallGain.Set(i, j, 0)
			}
		}
	}

	for j := range cols {
		for i := range rows {
			rg := recallGain.At(i, j)
			if rg > 1 {
				return nil, nil, nil, fmt.Errorf("recall gain %v above 1 at row %d column %d", rg, i, j)
			}
			if rg != 0 && precisionGain.At(i, j) > 1 {
				return nil, nil, nil, fmt.Errorf("precision gain %v above 1 at row %d column %d", precisionGain.At(i, j), i, j)
			}
		}
	}
	return recallGain, precisionGain, thresholds, nil
}
