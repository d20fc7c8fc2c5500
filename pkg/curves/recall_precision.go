package curves

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RecallPrecisionCurve computes the precision-recall curve with an optional
// replicate weight matrix. The name puts recall first because recall sits on
// the x-axis, consistent with ROCCurve.
//
// The sentinel point at threshold +Inf makes no positive predictions, so its
// precision is undefined; it is replaced by the precision at the first real
// threshold (backward interpolation) rather than left as 0/0.
func RecallPrecisionCurve(yTrue []bool, yScore []float64, sampleWeight *mat.Dense) (recall, precision *mat.Dense, thresholds []float64, err error) {
	fps, tps, thresholds, err := BinaryClfCurve(yTrue, yScore, sampleWeight)
	if err != nil {
		return nil, nil, nil, err
	}
	recall = divideByFinalRow(tps)

	rows, cols := tps.Dims()
	precision = mat.NewDense(rows, cols, nil)
	for j := range cols {
		for i := 1; i < rows; i++ {
			tp := tps.At(i, j)
			precision.Set(i, j, tp/(tp+fps.At(i, j)))
		}
		precision.Set(0, j, precision.At(1, j))
	}

	for j := range cols {
		for i := range rows {
			if p := precision.At(i, j); !(p >= 0 && p <= 1) {
				return nil, nil, nil, fmt.Errorf("precision %v out of range at row %d column %d", p, i, j)
			}
		}
	}
	return recall, precision, thresholds, nil
}
