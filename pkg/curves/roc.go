package curves

import "gonum.org/v1/gonum/mat"

// ROCCurve computes the ROC curve with an optional replicate weight matrix.
// Each count matrix from BinaryClfCurve is divided by its own final row
// column-wise, so every column starts at (0, 0) and ends at (1, 1).
func ROCCurve(yTrue []bool, yScore []float64, sampleWeight *mat.Dense) (fpr, tpr *mat.Dense, thresholds []float64, err error) {
	fps, tps, thresholds, err := BinaryClfCurve(yTrue, yScore, sampleWeight)
	if err != nil {
		return nil, nil, nil, err
	}
	fpr = divideByFinalRow(fps)
	tpr = divideByFinalRow(tps)
	return fpr, tpr, thresholds, nil
}

func divideByFinalRow(counts *mat.Dense) *mat.Dense {
	rows, cols := counts.Dims()
	out := mat.NewDense(rows, cols, nil)
	for j := range cols {
		total := counts.At(rows-1, j)
		for i := range rows {
			out.Set(i, j, counts.At(i, j)/total)
		}
	}
	return out
}
