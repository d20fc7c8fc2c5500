package curves

import (
	"fmt"

	"github.com/evalkit/perfcurves/pkg/utils/logger"
	"gonum.org/v1/gonum/mat"
)

// CurveKind selects which derived curve an Evaluator computes.
type CurveKind string

const (
	ROC             CurveKind = "roc"
	RecallPrecision CurveKind = "recall_precision"
	PRG             CurveKind = "prg"
)

// AreaRule selects how an Evaluator reduces a curve to one area per column.
type AreaRule string

const (
	Trapezoid   AreaRule = "trapezoid"
	LeftRiemann AreaRule = "left_riemann"
)

type Evaluator struct {
	Curve CurveKind
	Area  AreaRule
}

type EvaluatorOption func(*Evaluator)

func WithCurve(kind CurveKind) EvaluatorOption {
	return func(e *Evaluator) {
		e.Curve = kind
	}
}

func WithArea(rule AreaRule) EvaluatorOption {
	return func(e *Evaluator) {
		e.Area = rule
	}
}

// NewEvaluator builds an evaluator computing trapezoidal ROC AUC unless
// options say otherwise.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		Curve: ROC,
		Area:  Trapezoid,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate runs the labels and scores through the configured curve and
// reduces every replicate column to a single area value.
func (e *Evaluator) Evaluate(yTrue []bool, yScore []float64, sampleWeight *mat.Dense) ([]float64, error) {
	var xCurve, yCurve *mat.Dense
	var err error
	switch e.Curve {
	case ROC:
		xCurve, yCurve, _, err = ROCCurve(yTrue, yScore, sampleWeight)
	case RecallPrecision:
		xCurve, yCurve, _, err = RecallPrecisionCurve(yTrue, yScore, sampleWeight)
	case PRG:
		xCurve, yCurve, _, err = PRGCurve(yTrue, yScore, sampleWeight)
	default:
		return nil, fmt.Errorf("unknown curve kind %q", e.Curve)
	}
	if err != nil {
		return nil, err
	}

	var auc []float64
	switch e.Area {
	case Trapezoid:
		auc, err = AUCTrapezoid(xCurve, yCurve)
	case LeftRiemann:
		auc, err = AUCLeft(xCurve, yCurve)
	default:
		return nil, fmt.Errorf("unknown area rule %q", e.Area)
	}
	if err != nil {
		return nil, err
	}

	logger.Sugar().Debugw("Evaluated classification curve", "curve", e.Curve, "area", e.Area, "replicates", len(auc))
	return auc, nil
}
