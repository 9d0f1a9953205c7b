// SPDX-License-Identifier: MIT

// Package matrix: read-only Matrix surface shared by Dense and the validators.
package matrix

// Matrix is the read-only view validators operate on.
// Each accessor enforces bounds checking and returns errors instead of panicking.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}
