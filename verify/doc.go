// Package verify chains the full Möbius-index pipeline: antidiagonal
// accumulation → witness cross-check → decade index → density prediction.
//
// What:
//
//   - Evaluate runs the pipeline once over an explicit Input and returns
//     an immutable Result, including a Verified/Refuted status against
//     the 0.1-decade agreement threshold.
//   - Sweep recomputes the physical prediction for alternative ranks
//     without re-running the AHSS stage — a sensitivity view of how the
//     agreement degrades away from the computed rank.
//
// Why:
//
//   - The pipeline is a linear, side-effect-free transformation chain;
//     each invocation builds fresh values from its inputs, so concurrent
//     invocations are independent by construction.
//
// Errors:
//
//	Every stage error propagates outward unwrapped in kind: ahss
//	sentinels for table/witness failures, decade.ErrNegativeRank for a
//	negative rank, density sentinels for bad constants. Match with
//	errors.Is; there is no retry policy — any failure aborts the run.
package verify
