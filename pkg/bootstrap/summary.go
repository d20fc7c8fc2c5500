package bootstrap

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary is a point estimate with a percentile confidence interval taken
// across replicate columns.
type Summary struct {
	Mean  float64
	Lower float64
	Upper float64
}

// Percentile summarizes per-replicate values (one AUC per bootstrap column)
// as their mean and the symmetric percentile interval at the given confidence
// level, e.g. 0.95 for the 2.5th and 97.5th percentiles.
func Percentile(values []float64, confidence float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("no values to summarize")
	}
	if !(confidence > 0 && confidence < 1) {
		return Summary{}, fmt.Errorf("confidence must be in (0, 1), got %v", confidence)
	}
	for i, v := range values {
		if math.IsNaN(v) {
			return Summary{}, fmt.Errorf("NaN value at index %d", i)
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	alpha := (1 - confidence) / 2
	return Summary{
		Mean:  stat.Mean(sorted, nil),
		Lower: stat.Quantile(alpha, stat.Empirical, sorted, nil),
		Upper: stat.Quantile(1-alpha, stat.Empirical, sorted, nil),
	}, nil
}
