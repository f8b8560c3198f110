// Package ahss defines core types and sentinel errors
// for the ahss subpackage of mobius-vacuum-energy-verification.
package ahss

import (
	"errors"
	"sort"
)

// Sentinel errors for ahss operations.
var (
	// ErrNegativeEntry indicates a table value below zero; tables are validated
	// eagerly so the error surfaces at construction, never mid-computation.
	ErrNegativeEntry = errors.New("ahss: table entry must be non-negative")
	// ErrDegreeNotFound indicates a lookup for a degree absent from the table.
	ErrDegreeNotFound = errors.New("ahss: degree not present in table")
	// ErrNilTable indicates a nil *Table argument.
	ErrNilTable = errors.New("ahss: table is nil")
	// ErrBadDegree indicates a negative target total degree.
	ErrBadDegree = errors.New("ahss: target degree must be non-negative")
	// ErrWitnessMismatch indicates the diagonal total disagrees with the
	// externally supplied witness lower bound.
	ErrWitnessMismatch = errors.New("ahss: diagonal total disagrees with witness lower bound")
)

// Table is an immutable degree → value mapping with a fixed ascending
// display order. Values are validated non-negative at construction.
// An optional label per degree names the generators behind a dimension
// (e.g. "<a2, b2>"); labels are carried for reporting only.
type Table struct {
	degrees []int
	values  map[int]int
	labels  map[int]string
}

// NewTable builds a Table from values. Any negative value yields
// ErrNegativeEntry. The degree order used for display is ascending,
// independent of map iteration order.
func NewTable(values map[int]int) (*Table, error) {
	return NewLabeledTable(values, nil)
}

// NewLabeledTable builds a Table from values plus generator labels keyed by
// degree. Labels for degrees absent from values are ignored.
func NewLabeledTable(values map[int]int, labels map[int]string) (*Table, error) {
	t := &Table{
		degrees: make([]int, 0, len(values)),
		values:  make(map[int]int, len(values)),
		labels:  make(map[int]string, len(labels)),
	}
	for degree, v := range values {
		if v < 0 {
			return nil, ErrNegativeEntry
		}
		t.degrees = append(t.degrees, degree)
		t.values[degree] = v
	}
	sort.Ints(t.degrees)
	for degree, label := range labels {
		if _, ok := t.values[degree]; ok {
			t.labels[degree] = label
		}
	}
	return t, nil
}

// Value returns the stored value for degree, or ErrDegreeNotFound.
func (t *Table) Value(degree int) (int, error) {
	v, ok := t.values[degree]
	if !ok {
		return 0, ErrDegreeNotFound
	}
	return v, nil
}

// Has reports whether degree is present.
func (t *Table) Has(degree int) bool {
	_, ok := t.values[degree]
	return ok
}

// Label returns the generator label attached to degree, or "" if none.
func (t *Table) Label(degree int) string { return t.labels[degree] }

// Degrees returns the stored degrees in ascending order.
// The returned slice is a copy; callers may mutate it freely.
func (t *Table) Degrees() []int {
	out := make([]int, len(t.degrees))
	copy(out, t.degrees)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.degrees) }

// Term is one E2 panel on the p+q=n antidiagonal:
// Product = Dim × Rank, all fields non-negative, P+Q equal to the
// target degree of the DiagonalResult that holds the term.
type Term struct {
	P, Q    int
	Dim     int
	Rank    int
	Product int
}

// DiagonalResult holds the visited antidiagonal panels in the
// decreasing-p order they were walked, plus the exact total.
// Term order matters only for reproducible reporting; the sum is
// commutative.
type DiagonalResult struct {
	Degree    int
	Terms     []Term
	TotalRank int
}
