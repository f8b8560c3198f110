// Package decade maps a topological rank to a decade index — the integer
// count of orders of magnitude separating the Planck density from the
// predicted vacuum energy density.
//
// What:
//
//   - Index computes I10(m) = (2^m − 1) − m + 3 over *big.Int.
//   - Formula renders the fully substituted derivation of Index(m) as a
//     plain string for report output.
//
// Why:
//
//   - The transform must stay exact for arbitrarily large m: 2^m leaves
//     fixed-width integer range already at m=63, so the arithmetic is done
//     in math/big throughout and never silently truncates.
//
// Properties:
//
//   - Index(0) = 3.
//   - Strictly increasing for m ≥ 1 (the 2^m term dominates the −m term).
//
// Errors:
//
//   - ErrNegativeRank: m below zero is outside the transform's domain.
package decade
