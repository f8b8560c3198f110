// Package mobius is the umbrella for the Möbius-index vacuum energy
// verification: a small deterministic pipeline from fixed topological
// tables to a predicted physical density.
//
// 🚀 What does it compute?
//
//	The 2-torsion rank of Ω^Pin+_5(BGint) via the AHSS E2 diagonal,
//	the decade index I_10(m) = (2^m − 1) − m + 3, and the prediction
//	ρ_Λ = ρ_P × 10^(−I_10) compared against the observed vacuum
//	energy density — the agreement measured in decades.
//
// ✨ Why a library?
//
//   - Every input (tables, witness, constants) is an explicit parameter;
//     nothing is a module-level constant, so any table can be substituted.
//   - Exact arithmetic where it matters: the diagonal total is plain
//     integer accumulation, the 2^m term lives in math/big.
//   - Errors are package-prefixed sentinels matched via errors.Is;
//     every failure is detected at its source and aborts the run.
//
// Everything is organized under five subpackages plus one command:
//
//	ahss/    — ordered degree tables + antidiagonal accumulation
//	decade/  — the decade index transform over math/big
//	density/ — Planck-scaled prediction and log-scale comparison
//	verify/  — the end-to-end pipeline, witness check, sensitivity sweep
//	report/  — fixed-format text report
//	cmd/mobius-verify — CLI wrapper (exit 0 verified, 1 refuted, 2 error)
//
// Quick example:
//
//	dims, _ := ahss.NewTable(map[int]int{2: 2, 3: 1, 4: 2, 5: 2})
//	ranks, _ := ahss.NewTable(map[int]int{0: 1, 1: 1, 2: 1, 3: 1})
//	res, err := verify.Evaluate(verify.Input{
//		Degree: 5, Dims: dims, Ranks: ranks, Witness: 7,
//		PlanckDensity: 5.16e96, ObservedDensity: 5.83e-27,
//	})
//	// res.Rank == 7, res.DecadeIndex == 123, res.Status == verify.StatusVerified
package mobius
