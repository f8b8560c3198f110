package decade

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeRank indicates a negative rank passed to the index transform.
var ErrNegativeRank = errors.New("decade: rank must be non-negative")

// Index computes the decade index I10(m) = (2^m − 1) − m + 3.
//
// The three pieces of the formula count, respectively, the non-trivial
// parity characters (2^m − 1), the constraint reduction (−m), and the
// Z3 center anomaly contribution (+3).
//
// The result is exact for any non-negative m; 2^m is computed as a
// single-bit shift in math/big, so no fixed-width overflow is possible.
func Index(m int) (*big.Int, error) {
	if m < 0 {
		return nil, ErrNegativeRank
	}
	i := new(big.Int).Lsh(big.NewInt(1), uint(m)) // 2^m
	i.Sub(i, big.NewInt(1))
	i.Sub(i, big.NewInt(int64(m)))
	i.Add(i, big.NewInt(3))
	return i, nil
}

// Formula returns the substituted derivation of Index(m), e.g. for m=7:
//
//	(2^7-1) - 7 + 3 = 127 - 7 + 3 = 123
//
// It exists for report output only; the numeric contract lives in Index.
func Formula(m int) (string, error) {
	idx, err := Index(m)
	if err != nil {
		return "", err
	}
	pow := new(big.Int).Lsh(big.NewInt(1), uint(m))
	pow.Sub(pow, big.NewInt(1)) // 2^m − 1
	return fmt.Sprintf("(2^%d-1) - %d + 3 = %s - %d + 3 = %s", m, m, pow, m, idx), nil
}
