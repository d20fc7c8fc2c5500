package curves

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BinaryClfCurve computes weighted true and false positive counts per binary
// classification threshold, independently for each column of sampleWeight.
//
// yTrue holds the true targets, yScore the finite decision scores, and
// sampleWeight is an optional [nSamples x nReplicates] matrix of strictly
// positive weights, one column per bootstrap replicate. A nil sampleWeight
// means unit weights and a single output column.
//
// The returned fps and tps have shape [nThresholds x nReplicates]; entry i of
// a column counts the negative (resp. positive) weight assigned a score >=
// thresholds[i], so the final row carries the column's class totals.
// thresholds is shared across columns and strictly decreasing, with a leading
// +Inf sentinel whose counts are zero. Degenerate columns with no positives
// or no negatives come back repaired by AddPseudoPoints, so both final rows
// are strictly positive in every column.
func BinaryClfCurve(yTrue []bool, yScore []float64, sampleWeight *mat.Dense) (fps, tps *mat.Dense, thresholds []float64, err error) {
	if err := validateLabelsScores(yTrue, yScore); err != nil {
		return nil, nil, nil, err
	}
	n := len(yTrue)

	// Sort sample indices by score descending. The sort must be stable so
	// tied scores keep their input order before collapsing into one
	// threshold.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return yScore[order[a]] > yScore[order[b]]
	})

	sortedScore := make([]float64, n)
	sortedTrue := make([]bool, n)
	for i, idx := range order {
		sortedScore[i] = yScore[idx]
		sortedTrue[i] = yTrue[idx]
	}

	// Boundaries of distinct score values: every index whose score differs
	// from its successor, plus the final index. These become the thresholds.
	boundaries := make([]int, 0, n)
	for i := 0; i < n-1; i++ {
		if sortedScore[i] != sortedScore[i+1] {
			boundaries = append(boundaries, i)
		}
	}
	boundaries = append(boundaries, n-1)

	cols := 1
	if sampleWeight != nil {
		if err := validateSampleWeight(sampleWeight, n); err != nil {
			return nil, nil, nil, err
		}
		_, cols = sampleWeight.Dims()
	}

	nThresholds := len(boundaries) + 1
	fps = mat.NewDense(nThresholds, cols, nil)
	tps = mat.NewDense(nThresholds, cols, nil)

	// Row 0 stays zero: it is the sentinel point at threshold +Inf, where
	// nothing is predicted positive. The replicate axis is walked as whole
	// rows, so one pass over the samples covers every column.
	cumAll := make([]float64, cols)
	cumPos := make([]float64, cols)
	row := make([]float64, cols)
	next := 0
	for i := range n {
		if sampleWeight == nil {
			cumAll[0]++
			if sortedTrue[i] {
				cumPos[0]++
			}
		} else {
			w := sampleWeight.RawRowView(order[i])
			floats.Add(cumAll, w)
			if sortedTrue[i] {
				floats.Add(cumPos, w)
			}
		}
		if next < len(boundaries) && boundaries[next] == i {
			tps.SetRow(next+1, cumPos)
			copy(row, cumAll)
			floats.Sub(row, cumPos)
			fps.SetRow(next+1, row)
			next++
		}
	}

	if sampleWeight == nil {
		var nPos, nNeg float64
		for _, t := range yTrue {
			if t {
				nPos++
			} else {
				nNeg++
			}
		}
		if fps.At(nThresholds-1, 0) != nNeg || tps.At(nThresholds-1, 0) != nPos {
			return nil, nil, nil, fmt.Errorf("cumulative totals disagree with label tally")
		}
	}

	thresholds = make([]float64, nThresholds)
	thresholds[0] = math.Inf(1)
	for k, b := range boundaries {
		thresholds[k+1] = sortedScore[b]
	}

	fps, tps, err = AddPseudoPoints(fps, tps)
	if err != nil {
		return nil, nil, nil, err
	}

	// Running maximum per column removes any tiny decrease the epsilon
	// substitution could introduce. True positives are exact cumulative
	// sums and cannot regress.
	for j := range cols {
		maxSoFar := fps.At(0, j)
		for i := 1; i < nThresholds; i++ {
			if v := fps.At(i, j); v > maxSoFar {
				maxSoFar = v
			} else {
				fps.Set(i, j, maxSoFar)
			}
		}
	}

	if err := checkCurveCounts(fps, tps); err != nil {
		return nil, nil, nil, err
	}

	log.Debug().Msgf("Computed clf curve with %d thresholds across %d replicate columns", nThresholds, cols)
	return fps, tps, thresholds, nil
}

func checkCurveCounts(fps, tps *mat.Dense) error {
	rows, cols := fps.Dims()
	for j := range cols {
		for i := 1; i < rows; i++ {
			if fps.At(i, j) < fps.At(i-1, j) || tps.At(i, j) < tps.At(i-1, j) {
				return fmt.Errorf("counts decrease at row %d column %d", i, j)
			}
		}
		if fps.At(rows-1, j) <= 0 || tps.At(rows-1, j) <= 0 {
			return fmt.Errorf("final counts must be positive in column %d", j)
		}
	}
	return nil
}
