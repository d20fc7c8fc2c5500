package curves

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAUCTrapezoid(t *testing.T) {
	t.Run("unit square diagonal", func(t *testing.T) {
		x := mat.NewDense(3, 1, []float64{0, 0.5, 1})
		y := mat.NewDense(3, 1, []float64{0, 0.5, 1})

		auc, err := AUCTrapezoid(x, y)
		if err != nil {
			t.Fatalf("AUCTrapezoid failed: %v", err)
		}
		if !almostEqual(auc[0], 0.5) {
			t.Errorf("AUC = %v, want 0.5", auc[0])
		}
	})

	t.Run("independent columns", func(t *testing.T) {
		x := mat.NewDense(2, 2, []float64{
			0, 0,
			1, 2,
		})
		y := mat.NewDense(2, 2, []float64{
			1, 1,
			1, 3,
		})

		auc, err := AUCTrapezoid(x, y)
		if err != nil {
			t.Fatalf("AUCTrapezoid failed: %v", err)
		}
		if !almostEqual(auc[0], 1) || !almostEqual(auc[1], 4) {
			t.Errorf("AUC = %v, want [1 4]", auc)
		}
	})

	t.Run("descending x gives negative area", func(t *testing.T) {
		x := mat.NewDense(2, 1, []float64{1, 0})
		y := mat.NewDense(2, 1, []float64{1, 1})

		auc, err := AUCTrapezoid(x, y)
		if err != nil {
			t.Fatalf("AUCTrapezoid failed: %v", err)
		}
		if !almostEqual(auc[0], -1) {
			t.Errorf("AUC = %v, want -1", auc[0])
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		x := mat.NewDense(2, 1, []float64{0, 1})
		y := mat.NewDense(3, 1, []float64{0, 1, 2})
		if _, err := AUCTrapezoid(x, y); err == nil {
			t.Error("expected an error, got none")
		}
	})
}

func TestAUCLeft(t *testing.T) {
	t.Run("left edge value wins", func(t *testing.T) {
		x := mat.NewDense(3, 1, []float64{0, 1, 2})
		y := mat.NewDense(3, 1, []float64{5, 7, 100})

		auc, err := AUCLeft(x, y)
		if err != nil {
			t.Fatalf("AUCLeft failed: %v", err)
		}
		if !almostEqual(auc[0], 12) {
			t.Errorf("AUC = %v, want 12", auc[0])
		}
	})

	t.Run("zero times infinity counts as zero", func(t *testing.T) {
		x := mat.NewDense(2, 1, []float64{0, math.Inf(1)})
		y := mat.NewDense(2, 1, []float64{0, 1})

		auc, err := AUCLeft(x, y)
		if err != nil {
			t.Fatalf("AUCLeft failed: %v", err)
		}
		if auc[0] != 0 {
			t.Errorf("AUC = %v, want 0", auc[0])
		}
	})

	t.Run("rejects NaN", func(t *testing.T) {
		x := mat.NewDense(2, 1, []float64{0, 1})
		y := mat.NewDense(2, 1, []float64{math.NaN(), 1})
		if _, err := AUCLeft(x, y); err == nil {
			t.Error("expected an error for NaN input, got none")
		}

		xNaN := mat.NewDense(2, 1, []float64{math.NaN(), 1})
		ok := mat.NewDense(2, 1, []float64{0, 1})
		if _, err := AUCLeft(xNaN, ok); err == nil {
			t.Error("expected an error for NaN x input, got none")
		}
	})
}
