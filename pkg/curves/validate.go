package curves

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func validateLabelsScores(yTrue []bool, yScore []float64) error {
	if len(yTrue) == 0 {
		return fmt.Errorf("labels must not be empty")
	}
	if len(yScore) != len(yTrue) {
		return fmt.Errorf("got %d scores for %d labels", len(yScore), len(yTrue))
	}
	for i, s := range yScore {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("score at index %d is not finite: %v", i, s)
		}
	}
	return nil
}

func validateSampleWeight(sampleWeight *mat.Dense, nSamples int) error {
	rows, cols := sampleWeight.Dims()
	if rows != nSamples {
		return fmt.Errorf("sample weight has %d rows for %d samples", rows, nSamples)
	}
	if cols < 1 {
		return fmt.Errorf("sample weight needs at least one replicate column")
	}
	for i := range rows {
		for j := range cols {
			w := sampleWeight.At(i, j)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("sample weight at (%d, %d) is not finite: %v", i, j, w)
			}
			if w <= 0 {
				return fmt.Errorf("sample weight at (%d, %d) must be positive, got %v", i, j, w)
			}
		}
	}
	return nil
}

func sameDims(a, b *mat.Dense) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("matrix dimensions disagree: %dx%d vs %dx%d", ar, ac, br, bc)
	}
	return nil
}
