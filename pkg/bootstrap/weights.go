// Package bootstrap generates replicate weight matrices for batched curve
// computation and summarizes per-replicate results.
package bootstrap

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform returns the all-ones [nSamples x nReplicates] weight matrix, the
// explicit form of the curve engine's implicit unit column.
func Uniform(nSamples, nReplicates int) (*mat.Dense, error) {
	if err := checkShape(nSamples, nReplicates); err != nil {
		return nil, err
	}
	data := make([]float64, nSamples*nReplicates)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDense(nSamples, nReplicates, data), nil
}

// Bayesian draws a [nSamples x nReplicates] weight matrix for the Bayesian
// bootstrap: each cell is an independent Exponential(1) draw, so each column
// is a Dirichlet weighting up to its normalizing constant, which the rate
// computations cancel anyway. Every weight is strictly positive, which the
// curve engine requires; a multinomial resample cannot be used here because
// its zero counts violate that precondition.
//
// The same seed always produces the same matrix.
func Bayesian(nSamples, nReplicates int, seed uint64) (*mat.Dense, error) {
	if err := checkShape(nSamples, nReplicates); err != nil {
		return nil, err
	}
	exp := distuv.Exponential{
		Rate: 1,
		Src:  rand.NewPCG(seed, seed+1),
	}
	data := make([]float64, nSamples*nReplicates)
	for i := range data {
		data[i] = exp.Rand()
	}
	return mat.NewDense(nSamples, nReplicates, data), nil
}

func checkShape(nSamples, nReplicates int) error {
	if nSamples < 1 {
		return fmt.Errorf("need at least one sample, got %d", nSamples)
	}
	if nReplicates < 1 {
		return fmt.Errorf("need at least one replicate, got %d", nReplicates)
	}
	return nil
}
