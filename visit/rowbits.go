package visit

import "github.com/bits-and-blooms/bitset"

// RowBits is a visited set over a rectangular index space: one bitset per
// row, rows × cols bits in total. Graph VisitMap implementations translate
// their node ids into (row, col) and delegate here.
type RowBits struct {
	rows []*bitset.BitSet
	cols int
}

// NewRowBits allocates an empty set of rows × cols bits.
// Negative extents are treated as zero.
func NewRowBits(rows, cols int) *RowBits {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	rb := &RowBits{rows: make([]*bitset.BitSet, rows), cols: cols}
	for i := range rb.rows {
		rb.rows[i] = bitset.New(uint(cols))
	}

	return rb
}

// Mark sets (row, col) and reports whether it was previously clear.
// Positions outside the set are ignored and report false.
func (rb *RowBits) Mark(row, col int) bool {
	if row < 0 || row >= len(rb.rows) || col < 0 || col >= rb.cols {
		return false
	}
	b := rb.rows[row]
	if b.Test(uint(col)) {
		return false
	}
	b.Set(uint(col))

	return true
}

// Test reports whether (row, col) is set. Positions outside the set report false.
func (rb *RowBits) Test(row, col int) bool {
	if row < 0 || row >= len(rb.rows) || col < 0 || col >= rb.cols {
		return false
	}

	return rb.rows[row].Test(uint(col))
}

// Count returns the number of set positions.
func (rb *RowBits) Count() int {
	n := uint(0)
	for _, b := range rb.rows {
		n += b.Count()
	}

	return int(n)
}

// Reset clears every position.
func (rb *RowBits) Reset() {
	for _, b := range rb.rows {
		b.ClearAll()
	}
}
