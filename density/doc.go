// Package density turns a decade index into a physical vacuum energy
// prediction and compares it against the observed value.
//
// What:
//
//   - Predict scales the Planck density down by 10^(−I) and measures the
//     gap to the observed density in decades (log10 units).
//   - Comparison carries both densities, the prediction, the signed
//     agreement in decades, and an accuracy percentage for reporting.
//
// Why:
//
//   - The comparison is the end of the pipeline: one exact integer in,
//     two positive reals in, a signed log-scale discrepancy out. It is
//     pure arithmetic — any failure is a caller configuration error,
//     never a transient condition, so there is no retry surface.
//
// Errors:
//
//   - ErrNonPositiveDensity: an input density is ≤ 0, or the prediction
//     underflowed to zero (the decade index exceeds float64 range).
//   - ErrNegativeIndex: the decade index is negative.
//   - ErrNilIndex: a nil *big.Int index.
package density
