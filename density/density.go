package density

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Sentinel errors for density operations.
var (
	// ErrNonPositiveDensity indicates a density ≤ 0 where a strictly
	// positive value is required (log10 is undefined otherwise).
	ErrNonPositiveDensity = errors.New("density: density must be strictly positive")
	// ErrNegativeIndex indicates a negative decade index.
	ErrNegativeIndex = errors.New("density: decade index must be non-negative")
	// ErrNilIndex indicates a nil *big.Int decade index.
	ErrNilIndex = errors.New("density: decade index is nil")
)

// Comparison is the immutable outcome of one prediction: the inputs, the
// predicted density, the signed agreement in decades (positive means
// observed exceeds predicted), and an accuracy percentage relative to
// the full Planck-to-observed span.
type Comparison struct {
	DecadeIndex      *big.Int
	PlanckDensity    float64
	ObservedDensity  float64
	PredictedDensity float64
	AgreementDecades float64
	AccuracyPercent  float64
}

// Predict computes predicted = planck × 10^(−index) and the signed
// log10 gap between observed and predicted.
//
// Both densities must be strictly positive and the index non-negative.
// An index large enough to underflow float64 makes the prediction zero,
// which is rejected the same way a non-positive input is: the log-scale
// comparison has no meaningful answer there.
func Predict(index *big.Int, planck, observed float64) (Comparison, error) {
	if index == nil {
		return Comparison{}, ErrNilIndex
	}
	if index.Sign() < 0 {
		return Comparison{}, ErrNegativeIndex
	}
	if planck <= 0 {
		return Comparison{}, fmt.Errorf("planck density %g: %w", planck, ErrNonPositiveDensity)
	}
	if observed <= 0 {
		return Comparison{}, fmt.Errorf("observed density %g: %w", observed, ErrNonPositiveDensity)
	}

	exp, _ := new(big.Float).SetInt(index).Float64()
	predicted := planck * math.Pow(10, -exp)
	if predicted <= 0 || math.IsNaN(predicted) {
		return Comparison{}, fmt.Errorf("predicted density underflowed at index %s: %w", index, ErrNonPositiveDensity)
	}

	agreement := math.Log10(observed / predicted)
	span := math.Abs(math.Log10(observed / planck))
	accuracy := 100.0
	if span > 0 {
		accuracy = (1 - math.Abs(agreement)/span) * 100
	}

	return Comparison{
		DecadeIndex:      new(big.Int).Set(index),
		PlanckDensity:    planck,
		ObservedDensity:  observed,
		PredictedDensity: predicted,
		AgreementDecades: agreement,
		AccuracyPercent:  accuracy,
	}, nil
}
