package curves

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// AUCTrapezoid integrates each column of yCurve against the matching column
// of xCurve with the trapezoid rule. dx keeps its sign, so a curve traversed
// in descending x yields a negative area; callers integrating ROC or
// recall-gain curves get the usual positive value because those are built
// ascending.
func AUCTrapezoid(xCurve, yCurve *mat.Dense) ([]float64, error) {
	if err := sameDims(xCurve, yCurve); err != nil {
		return nil, err
	}
	rows, cols := xCurve.Dims()
	auc := make([]float64, cols)
	for j := range cols {
		var sum float64
		for i := 0; i < rows-1; i++ {
			dx := xCurve.At(i+1, j) - xCurve.At(i, j)
			sum += 0.5 * (yCurve.At(i, j) + yCurve.At(i+1, j)) * dx
		}
		auc[j] = sum
	}
	return auc, nil
}

// AUCLeft reduces each column with a left Riemann sum: the y value at the
// left edge of every interval times the interval width. A 0 times Inf
// product at a boundary counts as 0. NaN anywhere in either input is
// rejected.
func AUCLeft(xCurve, yCurve *mat.Dense) ([]float64, error) {
	if err := sameDims(xCurve, yCurve); err != nil {
		return nil, err
	}
	rows, cols := xCurve.Dims()
	for j := range cols {
		for i := range rows {
			if math.IsNaN(xCurve.At(i, j)) || math.IsNaN(yCurve.At(i, j)) {
				return nil, fmt.Errorf("NaN at row %d column %d", i, j)
			}
		}
	}

	auc := make([]float64, cols)
	for j := range cols {
		var sum float64
		for i := 0; i < rows-1; i++ {
			p := yCurve.At(i, j) * (xCurve.At(i+1, j) - xCurve.At(i, j))
			if !math.IsNaN(p) {
				sum += p
			}
		}
		auc[j] = sum
	}
	return auc, nil
}
