// Package ahss computes E2-page diagonal ranks of an Atiyah–Hirzebruch
// spectral sequence from fixed cohomology and bordism coefficient tables.
//
// What:
//
//   - Table wraps an ordered degree → value mapping with eager validation
//     and optional generator labels for reporting.
//   - DiagonalSum walks the p+q=n antidiagonal in decreasing p, multiplying
//     dim H^p by rank Ω_q per panel and accumulating the exact total.
//   - DiagonalResult.RequireWitness cross-checks the accumulated upper
//     bound against an externally asserted lower-bound witness.
//
// Why:
//
//   - The total diagonal rank is the single integer that feeds the decade
//     index and, through it, the vacuum energy prediction.
//   - Keeping tables explicit (rather than module-level constants) lets
//     callers substitute arbitrary inputs without shared state.
//
// Complexity:
//
//   - NewTable:     O(k log k) over k entries (one sort for display order).
//   - DiagonalSum:  O(d) over d visited panels, exact integer arithmetic.
//
// Errors:
//
//   - ErrNegativeEntry: a table value is negative (rejected at construction).
//   - ErrDegreeNotFound: a lookup references a degree absent from the table.
//   - ErrNilTable: a nil *Table was passed to DiagonalSum.
//   - ErrBadDegree: the target total degree is negative.
//   - ErrWitnessMismatch: total rank disagrees with the witness lower bound.
package ahss
