package bootstrap

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"
	"gonum.org/v1/gonum/mat"

	"github.com/evalkit/perfcurves/pkg/config"
)

// Plan bundles the replicate count, seed, and confidence level one bootstrap
// analysis runs with.
type Plan struct {
	Replicates int
	Seed       uint64
	Confidence float64
}

// NewPlan builds a plan from the BOOT_* environment variables, falling back
// to 1000 replicates at 95% confidence.
func NewPlan() *Plan {
	var envCfg config.BootstrapEnvConfig
	if err := envconfig.Process(context.Background(), &envCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to process environment variables for bootstrap")
	}

	return &Plan{
		Replicates: envCfg.Replicates,
		Seed:       envCfg.Seed,
		Confidence: envCfg.Confidence,
	}
}

// Weights draws the plan's replicate weight matrix for nSamples samples.
func (p *Plan) Weights(nSamples int) (*mat.Dense, error) {
	return Bayesian(nSamples, p.Replicates, p.Seed)
}

// Summarize reduces per-replicate values to the plan's percentile interval.
func (p *Plan) Summarize(values []float64) (Summary, error) {
	return Percentile(values, p.Confidence)
}
