package ahss

import "fmt"

// DiagonalSum — E2 antidiagonal accumulation
//
// Description:
//
//	For the AHSS computing a degree-n bordism group, the E2 page
//	contributes one panel E^{p,q}_2 per decomposition p+q=n. Each panel
//	rank is dim H^p × rank Ω_q; the diagonal total bounds the target
//	rank from above.
//
// Algorithm Outline:
//  1. Validate n ≥ 0 and both tables non-nil.
//  2. For p = n down to 0, while q = n−p is present in ranks:
//     look up dim(p) — a missing dimension is an error, not a skip —
//     append the (p, q, dim, rank, product) panel, accumulate the total.
//  3. Return the terms in the decreasing-p walk order with the total.
//
// The walk stops at the first q absent from the rank table: coefficient
// tables are supplied as a contiguous run of low degrees, and panels
// beyond the supplied run carry no rank information.
//
// Errors:
//   - ErrBadDegree       — n is negative.
//   - ErrNilTable        — dims or ranks is nil.
//   - ErrDegreeNotFound  — dim(p) missing for a visited panel (wrapped
//     with the offending degree).
func DiagonalSum(n int, dims, ranks *Table) (*DiagonalResult, error) {
	if dims == nil || ranks == nil {
		return nil, ErrNilTable
	}
	if n < 0 {
		return nil, ErrBadDegree
	}

	res := &DiagonalResult{Degree: n}
	for p := n; p >= 0; p-- {
		q := n - p
		if !ranks.Has(q) {
			break
		}
		dim, err := dims.Value(p)
		if err != nil {
			return nil, fmt.Errorf("dim H^%d: %w", p, err)
		}
		rank, err := ranks.Value(q)
		if err != nil {
			return nil, fmt.Errorf("rank Ω_%d: %w", q, err)
		}
		res.Terms = append(res.Terms, Term{
			P:       p,
			Q:       q,
			Dim:     dim,
			Rank:    rank,
			Product: dim * rank,
		})
		res.TotalRank += dim * rank
	}
	return res, nil
}

// RequireWitness checks the accumulated upper bound against an
// independently asserted lower bound. The two agree exactly when the
// claimed rank equality holds; any gap is a logical inconsistency and a
// hard stop, not a warning.
func (r *DiagonalResult) RequireWitness(lower int) error {
	if r.TotalRank != lower {
		return fmt.Errorf("computed total %d, witness %d: %w", r.TotalRank, lower, ErrWitnessMismatch)
	}
	return nil
}
