package ahss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playfularchitect/mobius-vacuum-energy-verification/ahss"
)

// sampleDims/sampleRanks are the published BGint inputs used throughout
// the package tests.
func sampleDims(t *testing.T) *ahss.Table {
	t.Helper()
	dims, err := ahss.NewTable(map[int]int{2: 2, 3: 1, 4: 2, 5: 2})
	require.NoError(t, err)
	return dims
}

func sampleRanks(t *testing.T) *ahss.Table {
	t.Helper()
	ranks, err := ahss.NewTable(map[int]int{0: 1, 1: 1, 2: 1, 3: 1})
	require.NoError(t, err)
	return ranks
}

// TestNewTable_NegativeEntry verifies eager validation: a negative stored
// value must fail at construction, before any lookup happens.
func TestNewTable_NegativeEntry(t *testing.T) {
	_, err := ahss.NewTable(map[int]int{2: 2, 3: -1})
	assert.ErrorIs(t, err, ahss.ErrNegativeEntry, "negative entry must fail at construction")
}

// TestTable_Lookup verifies Value, Has and the missing-degree sentinel.
func TestTable_Lookup(t *testing.T) {
	dims := sampleDims(t)

	v, err := dims.Value(4)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.True(t, dims.Has(5))
	assert.False(t, dims.Has(6))

	_, err = dims.Value(6)
	assert.ErrorIs(t, err, ahss.ErrDegreeNotFound, "absent degree must error")
}

// TestTable_DegreesOrdered verifies the display order is ascending
// regardless of map iteration order.
func TestTable_DegreesOrdered(t *testing.T) {
	dims := sampleDims(t)
	assert.Equal(t, []int{2, 3, 4, 5}, dims.Degrees())
}

// TestTable_Labels verifies labels attach only to present degrees.
func TestTable_Labels(t *testing.T) {
	dims, err := ahss.NewLabeledTable(
		map[int]int{2: 2, 3: 1},
		map[int]string{2: "<a2, b2>", 9: "<ghost>"},
	)
	require.NoError(t, err)
	assert.Equal(t, "<a2, b2>", dims.Label(2))
	assert.Empty(t, dims.Label(3), "unlabeled degree yields empty string")
	assert.Empty(t, dims.Label(9), "label for absent degree is dropped")
}

// TestDiagonalSum_Sample checks the reference antidiagonal: terms
// (5,0)=2, (4,1)=2, (3,2)=1, (2,3)=2 in decreasing-p order, total 7.
func TestDiagonalSum_Sample(t *testing.T) {
	res, err := ahss.DiagonalSum(5, sampleDims(t), sampleRanks(t))
	require.NoError(t, err)

	want := []ahss.Term{
		{P: 5, Q: 0, Dim: 2, Rank: 1, Product: 2},
		{P: 4, Q: 1, Dim: 2, Rank: 1, Product: 2},
		{P: 3, Q: 2, Dim: 1, Rank: 1, Product: 1},
		{P: 2, Q: 3, Dim: 2, Rank: 1, Product: 2},
	}
	assert.Equal(t, want, res.Terms, "terms must follow the decreasing-p walk")
	assert.Equal(t, 7, res.TotalRank)
	assert.Equal(t, 5, res.Degree)
}

// TestDiagonalSum_OrderInvariant verifies the total does not depend on
// table construction order: the sum is commutative, only the term order
// is pinned for reporting.
func TestDiagonalSum_OrderInvariant(t *testing.T) {
	// Same content as sampleDims, inserted in a different literal order.
	dims, err := ahss.NewTable(map[int]int{5: 2, 2: 2, 4: 2, 3: 1})
	require.NoError(t, err)
	ranks, err := ahss.NewTable(map[int]int{3: 1, 0: 1, 2: 1, 1: 1})
	require.NoError(t, err)

	a, err := ahss.DiagonalSum(5, dims, ranks)
	require.NoError(t, err)
	b, err := ahss.DiagonalSum(5, sampleDims(t), sampleRanks(t))
	require.NoError(t, err)

	assert.Equal(t, b.TotalRank, a.TotalRank)
	assert.Equal(t, b.Terms, a.Terms)
}

// TestDiagonalSum_MissingDim verifies that a rank-covered panel with a
// missing cohomology dimension is an error, not a silent skip.
func TestDiagonalSum_MissingDim(t *testing.T) {
	dims, err := ahss.NewTable(map[int]int{5: 2, 4: 2}) // no H^3
	require.NoError(t, err)

	_, err = ahss.DiagonalSum(5, dims, sampleRanks(t))
	assert.ErrorIs(t, err, ahss.ErrDegreeNotFound, "missing dim on a visited panel must error")
}

// TestDiagonalSum_BadInputs covers nil tables and negative degree.
func TestDiagonalSum_BadInputs(t *testing.T) {
	dims, ranks := sampleDims(t), sampleRanks(t)

	_, err := ahss.DiagonalSum(5, nil, ranks)
	assert.ErrorIs(t, err, ahss.ErrNilTable)

	_, err = ahss.DiagonalSum(5, dims, nil)
	assert.ErrorIs(t, err, ahss.ErrNilTable)

	_, err = ahss.DiagonalSum(-1, dims, ranks)
	assert.ErrorIs(t, err, ahss.ErrBadDegree)
}

// TestRequireWitness verifies the hard-stop semantics of the witness
// cross-check: exact agreement passes, any gap fails.
func TestRequireWitness(t *testing.T) {
	res, err := ahss.DiagonalSum(5, sampleDims(t), sampleRanks(t))
	require.NoError(t, err)

	assert.NoError(t, res.RequireWitness(7), "matching witness must pass")
	assert.ErrorIs(t, res.RequireWitness(6), ahss.ErrWitnessMismatch, "witness below total must fail")
	assert.ErrorIs(t, res.RequireWitness(8), ahss.ErrWitnessMismatch, "witness above total must fail")
}
