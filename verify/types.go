// Package verify defines the pipeline input/result types and the
// verification status enum.
package verify

import (
	"math/big"

	"github.com/playfularchitect/mobius-vacuum-energy-verification/ahss"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/density"
)

// AgreementThreshold is the |agreement| bound, in decades, below which a
// prediction counts as verified.
const AgreementThreshold = 0.1

// Status is the verdict of one pipeline run.
type Status string

const (
	// StatusVerified — |agreement| < AgreementThreshold.
	StatusVerified Status = "verified"
	// StatusRefuted — the prediction misses by at least the threshold.
	StatusRefuted Status = "refuted"
)

// Input carries everything one Evaluate call consumes. The witness lower
// bound is an externally asserted fact, not derived here; callers must
// supply it alongside the tables.
type Input struct {
	// Degree is the target total degree n of the antidiagonal.
	Degree int
	// Dims is the cohomology dimension table (degree → dim H^p).
	Dims *ahss.Table
	// Ranks is the bordism coefficient table (degree → rank Ω_q).
	Ranks *ahss.Table
	// Witness is the independently derived lower bound the diagonal
	// total must meet exactly.
	Witness int
	// PlanckDensity and ObservedDensity are the physical constants, kg/m³.
	PlanckDensity   float64
	ObservedDensity float64
}

// Result is the immutable outcome of one Evaluate call.
type Result struct {
	Input       Input
	Diagonal    *ahss.DiagonalResult
	Rank        int
	DecadeIndex *big.Int
	Comparison  density.Comparison
	Status      Status
}

// SweepRow is one sensitivity-analysis entry: the prediction the pipeline
// would have made had the diagonal produced Rank instead.
type SweepRow struct {
	Rank        int
	DecadeIndex *big.Int
	Comparison  density.Comparison
}
