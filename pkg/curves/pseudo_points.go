package curves

import "gonum.org/v1/gonum/mat"

// AddPseudoPoints repairs replicate columns that end with no false positives
// or no true positives. A column whose final false-positive count is zero has
// its false-positive counts replaced by Epsilon times the true-positive
// counts, and symmetrically for a zero final true-positive count, so every
// rate computed downstream keeps a strictly positive denominator. Columns are
// never mixed; both inputs are left untouched.
//
// Which columns need fixing is decided before either substitution runs. The
// true-positive substitution then reads the already-substituted
// false-positive counts, matching the reference ordering.
func AddPseudoPoints(fps, tps *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	if err := sameDims(fps, tps); err != nil {
		return nil, nil, err
	}
	rows, cols := fps.Dims()
	last := rows - 1

	fpsFix := make([]bool, cols)
	tpsFix := make([]bool, cols)
	for j := range cols {
		fpsFix[j] = fps.At(last, j) == 0
		tpsFix[j] = tps.At(last, j) == 0
	}

	outFPS := mat.DenseCopyOf(fps)
	outTPS := mat.DenseCopyOf(tps)
	for j := range cols {
		if fpsFix[j] {
			for i := range rows {
				outFPS.Set(i, j, Epsilon*outTPS.At(i, j))
			}
		}
	}
	for j := range cols {
		if tpsFix[j] {
			for i := range rows {
				outTPS.Set(i, j, Epsilon*outFPS.At(i, j))
			}
		}
	}
	return outFPS, outTPS, nil
}
