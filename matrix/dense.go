// SPDX-License-Identifier: MIT

// Package matrix - Dense square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Stay immutable after ingestion: there is no Set, so a Dense handed to an
//     algorithm cannot change underneath it.
//
// Complexity quicksheet:
//   - At: O(1); Row: O(n); Clone: O(n²); Do: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of distances.
//   - n holds the order (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// A Dense is only produced by the ingestion constructors (FromRows, FromCells,
// FromGonum), which copy the caller's data.
type Dense struct {
	n    int       // matrix order (>=1)
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense allocates a zero-filled n×n buffer. Callers guarantee n >= 1.
func newDense(n int) *Dense {
	return &Dense{n: n, data: make([]float64, n*n)}
}

// Order returns n for an n×n matrix.
// Complexity: O(1).
func (m *Dense) Order() int { return m.n }

// Rows returns the row count. Always equal to Order().
// Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count. Always equal to Order().
// Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the bare ErrOutOfRange sentinel; public methods wrap it with
// their method tag and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: read from the flat buffer.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) when indices are invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	// Return stored value
	return m.data[idx], nil
}

// Row returns a copy of row i. Mutating the result never affects m.
//
// Errors:
//   - ErrOutOfRange (wrapped) when i is outside [0, n).
//
// Complexity:
//   - Time O(n), Space O(n).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n]) // row i occupies [i*n, (i+1)*n)

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{n: m.n, data: cp}
}

// Do calls f for every element in row-major order until f returns false.
// Complexity: O(n²) time, O(1) space.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ { // iterate rows deterministically
		base = i * m.n
		for j = 0; j < m.n; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders the rows for diagnostics, one line per row.
// Not for hot paths.
// Complexity: O(n²).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
