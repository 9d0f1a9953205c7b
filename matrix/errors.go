// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors return these sentinels (optionally wrapped
// with coordinates via %w) and tests check them via errors.Is. No function
// panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Context (method tag, row, column) is attached with fmt.Errorf("...: %w", ErrX)
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced by the ingestion loop, row-major):
// nil source -> empty shape -> first offending cell (missing before non-scalar
// within the same cell).

var (
	// ErrNilMatrix indicates that a nil source or receiver was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when the source has no rows at all.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrMissingCell indicates that row i has no value at some column j < order,
	// i.e. the source is ragged, short, or holds a nil cell.
	ErrMissingCell = errors.New("matrix: missing cell")

	// ErrNonScalar indicates that a cell is not a scalar numeric value
	// (strings, bools, slices, maps, structs ...).
	ErrNonScalar = errors.New("matrix: cell is not a scalar number")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tol")

	// ErrNonZeroDiagonal signals that a diagonal entry is not ~0 within tolerance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within tol")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (validator tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
