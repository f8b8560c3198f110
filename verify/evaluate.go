package verify

import (
	"errors"
	"math"

	"github.com/playfularchitect/mobius-vacuum-energy-verification/ahss"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/decade"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/density"
)

// ErrBadSweepRange indicates a sweep range with from > to.
var ErrBadSweepRange = errors.New("verify: sweep range must satisfy from <= to")

// Evaluate runs the pipeline once:
//
//  1. DiagonalSum over the p+q=Degree antidiagonal.
//  2. Witness cross-check (hard stop on mismatch).
//  3. Decade index of the total rank.
//  4. Density prediction and log-scale comparison.
//
// Stage errors propagate unwrapped in kind; see the package doc for the
// sentinel taxonomy.
func Evaluate(in Input) (*Result, error) {
	diag, err := ahss.DiagonalSum(in.Degree, in.Dims, in.Ranks)
	if err != nil {
		return nil, err
	}
	if err = diag.RequireWitness(in.Witness); err != nil {
		return nil, err
	}

	idx, err := decade.Index(diag.TotalRank)
	if err != nil {
		return nil, err
	}
	cmp, err := density.Predict(idx, in.PlanckDensity, in.ObservedDensity)
	if err != nil {
		return nil, err
	}

	status := StatusRefuted
	if math.Abs(cmp.AgreementDecades) < AgreementThreshold {
		status = StatusVerified
	}
	return &Result{
		Input:       in,
		Diagonal:    diag,
		Rank:        diag.TotalRank,
		DecadeIndex: idx,
		Comparison:  cmp,
		Status:      status,
	}, nil
}

// Sweep recomputes the physical stages for every rank in [from, to],
// leaving the AHSS stage untouched. It answers "how sharply does the
// agreement peak at the computed rank" — neighbouring ranks shift the
// prediction by whole decades, so the comparison degrades fast.
func Sweep(in Input, from, to int) ([]SweepRow, error) {
	if from > to {
		return nil, ErrBadSweepRange
	}
	rows := make([]SweepRow, 0, to-from+1)
	for m := from; m <= to; m++ {
		idx, err := decade.Index(m)
		if err != nil {
			return nil, err
		}
		cmp, err := density.Predict(idx, in.PlanckDensity, in.ObservedDensity)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SweepRow{Rank: m, DecadeIndex: idx, Comparison: cmp})
	}
	return rows, nil
}
