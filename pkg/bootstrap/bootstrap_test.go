package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/evalkit/perfcurves/pkg/curves"
)

func TestUniform(t *testing.T) {
	w, err := Uniform(4, 3)
	require.NoError(t, err)

	rows, cols := w.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 3, cols)
	for i := range rows {
		for j := range cols {
			assert.Equal(t, 1.0, w.At(i, j))
		}
	}

	_, err = Uniform(0, 3)
	assert.Error(t, err)
	_, err = Uniform(4, 0)
	assert.Error(t, err)
}

func TestBayesianWeights(t *testing.T) {
	w, err := Bayesian(20, 50, 7)
	require.NoError(t, err)

	rows, cols := w.Dims()
	require.Equal(t, 20, rows)
	require.Equal(t, 50, cols)
	for i := range rows {
		for j := range cols {
			assert.Greater(t, w.At(i, j), 0.0, "weight at (%d, %d)", i, j)
		}
	}

	same, err := Bayesian(20, 50, 7)
	require.NoError(t, err)
	assert.True(t, mat.Equal(w, same), "same seed must reproduce the matrix")

	other, err := Bayesian(20, 50, 8)
	require.NoError(t, err)
	assert.False(t, mat.Equal(w, other), "different seeds must differ")
}

func TestBayesianWeightsFeedTheEngine(t *testing.T) {
	yTrue := []bool{true, false, true, false, true, false}
	yScore := []float64{0.9, 0.8, 0.7, 0.5, 0.4, 0.2}

	w, err := Bayesian(len(yTrue), 200, 3)
	require.NoError(t, err)

	fps, tps, _, err := curves.BinaryClfCurve(yTrue, yScore, w)
	require.NoError(t, err)

	rows, cols := fps.Dims()
	for j := range cols {
		assert.Greater(t, fps.At(rows-1, j), 0.0)
		assert.Greater(t, tps.At(rows-1, j), 0.0)
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	s, err := Percentile(values, 0.9)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.LessOrEqual(t, s.Lower, s.Mean)
	assert.GreaterOrEqual(t, s.Upper, s.Mean)
	assert.GreaterOrEqual(t, s.Lower, 1.0)
	assert.LessOrEqual(t, s.Upper, 5.0)

	_, err = Percentile(nil, 0.9)
	assert.Error(t, err)
	_, err = Percentile(values, 0)
	assert.Error(t, err)
	_, err = Percentile(values, 1)
	assert.Error(t, err)
}

func TestPlanEndToEnd(t *testing.T) {
	t.Setenv("BOOT_REPLICATES", "64")
	t.Setenv("BOOT_SEED", "11")
	t.Setenv("BOOT_CONFIDENCE", "0.9")

	plan := NewPlan()
	require.Equal(t, 64, plan.Replicates)
	require.EqualValues(t, 11, plan.Seed)
	require.InDelta(t, 0.9, plan.Confidence, 1e-12)

	yTrue := []bool{true, true, false, true, false, false, true, false}
	yScore := []float64{0.95, 0.85, 0.8, 0.7, 0.4, 0.35, 0.3, 0.1}

	w, err := plan.Weights(len(yTrue))
	require.NoError(t, err)

	auc, err := curves.NewEvaluator().Evaluate(yTrue, yScore, w)
	require.NoError(t, err)
	require.Len(t, auc, plan.Replicates)

	s, err := plan.Summarize(auc)
	require.NoError(t, err)
	assert.LessOrEqual(t, s.Lower, s.Upper)
	assert.GreaterOrEqual(t, s.Lower, 0.0)
	assert.LessOrEqual(t, s.Upper, 1.0)
}
