// Package fibtable provides an immutable table of Fibonacci numbers and
// their squares. It is the leaf dependency of the fractal multiplier and
// the analog simulator: both derive their active cell sets from a prefix
// of this table.
//
// The table uses the F(1)=F(2)=1 convention, so the first two entries are
// duplicated unit terms. Membership queries resolve to the first position
// of a value.
package fibtable

import (
	"errors"
	"math/big"
)

// DefaultSize is the default number of terms generated for a multiplier
// table. The values are arbitrary-precision, so sizes well beyond the
// uint64 range (F(94) and up) are supported.
const DefaultSize = 100

// ErrNotMember is returned when a query refers to a value that is not
// present in the table. Callers that cannot tolerate the error should
// check membership with Contains or IndexOf first.
var ErrNotMember = errors.New("fibtable: value is not in the table")

// Table holds the first N Fibonacci values, their squares, and a
// value-to-position index for O(1) membership tests. A Table is immutable
// once built; all accessors return copies so callers cannot corrupt the
// shared state.
type Table struct {
	values  []*big.Int
	squares []*big.Int
	// index maps the decimal representation of a value to its first
	// position. big.Int is not a valid map key, so the canonical string
	// form stands in for it.
	index map[string]int
}

// Build generates a table with maxCount Fibonacci terms starting from the
// (1, 1) seed. For maxCount <= 2 the unmodified seed is returned, so the
// resulting table always holds at least two terms. There is no error path:
// every count yields a valid table.
//
// Parameters:
//   - maxCount: The number of terms to generate.
//
// Returns:
//   - *Table: The immutable table of Fibonacci values and squares.
func Build(maxCount int) *Table {
	n := maxCount
	if n < 2 {
		n = 2
	}

	values := make([]*big.Int, 0, n)
	values = append(values, big.NewInt(1), big.NewInt(1))
	for i := 2; i < n; i++ {
		next := new(big.Int).Add(values[i-1], values[i-2])
		values = append(values, next)
	}

	t := &Table{
		values:  values,
		squares: make([]*big.Int, len(values)),
		index:   make(map[string]int, len(values)),
	}
	for i, v := range values {
		t.squares[i] = new(big.Int).Mul(v, v)
		key := v.String()
		if _, seen := t.index[key]; !seen {
			t.index[key] = i
		}
	}
	return t
}

// Len returns the number of terms in the table, duplicated unit terms
// included.
func (t *Table) Len() int { return len(t.values) }

// Value returns a copy of the term at position i (0-based). It panics if
// i is out of range, mirroring slice indexing semantics.
func (t *Table) Value(i int) *big.Int {
	return new(big.Int).Set(t.values[i])
}

// Contains reports whether v is one of the table's Fibonacci values.
func (t *Table) Contains(v *big.Int) bool {
	_, ok := t.index[v.String()]
	return ok
}

// IndexOf returns the first position of v in the table and whether v is a
// member. For the duplicated unit value the position is 0.
func (t *Table) IndexOf(v *big.Int) (int, bool) {
	i, ok := t.index[v.String()]
	return i, ok
}

// SquareOf returns v² for a table member. The square is precomputed at
// build time; the returned value is a copy.
//
// Returns:
//   - *big.Int: The exact square of v.
//   - error: ErrNotMember if v is absent from the table.
func (t *Table) SquareOf(v *big.Int) (*big.Int, error) {
	i, ok := t.index[v.String()]
	if !ok {
		return nil, ErrNotMember
	}
	return new(big.Int).Set(t.squares[i]), nil
}

// Prefix returns copies of the terms at positions 0..idx inclusive. This
// is the active cell set of a simulation run keyed by min(a, b)'s index.
// It panics if idx is out of range.
func (t *Table) Prefix(idx int) []*big.Int {
	prefix := make([]*big.Int, idx+1)
	for i := 0; i <= idx; i++ {
		prefix[i] = new(big.Int).Set(t.values[i])
	}
	return prefix
}

// Values returns a copy of the full value sequence in table order.
func (t *Table) Values() []*big.Int {
	return t.Prefix(len(t.values) - 1)
}
