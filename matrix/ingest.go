// SPDX-License-Identifier: MIT

// Package matrix - ingestion of caller data into Dense.
//
// Purpose:
//   - Turn typed rows, dynamic cells (decoded JSON and the like) or a gonum
//     matrix into an immutable square Dense.
//   - Detect the structural defects a dense distance matrix must not have:
//     empty input, missing cells (ragged/short rows, nil cells) and non-scalar
//     cells.
//
// Policy:
//   - The order n is the number of rows. Only columns 0..n-1 of each row are
//     read; trailing columns are ignored.
//   - Values are copied as-is. Symmetry, sign, diagonal and finiteness are NOT
//     checked here; see validators.go for opt-in checks.
//   - The scan is row-major and stops at the first offending cell, so the
//     reported coordinates are deterministic.

package matrix

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromRows  = "FromRows"
	ctxFromCells = "FromCells"
	ctxFromGonum = "FromGonum"
)

// ingestErrorf attaches the constructor tag and offending coordinates.
func ingestErrorf(ctor string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", ctor, row, col, err)
}

// FromRows copies a [][]float64 into a new n×n Dense, n = len(rows).
//
// Implementation:
//   - Stage 1: reject an empty source (ErrBadShape).
//   - Stage 2: for each row i, require len(rows[i]) >= n, then copy columns 0..n-1.
//
// Errors:
//   - ErrBadShape when len(rows) == 0.
//   - ErrMissingCell (wrapped with row and first missing column) for short rows.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrBadShape)
	}

	m := newDense(n)
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) < n {
			// The first absent column is exactly len(rows[i]).
			return nil, ingestErrorf(ctxFromRows, i, len(rows[i]), ErrMissingCell)
		}
		copy(m.data[i*n:(i+1)*n], rows[i][:n])
	}

	return m, nil
}

// FromCells converts dynamically typed cells into a new n×n Dense, n = len(cells).
//
// Accepted scalars: every Go integer and float kind (including named types
// such as `type Meters float64`) and json.Number. A nil cell counts as missing.
// Anything else is ErrNonScalar.
//
// Errors:
//   - ErrBadShape when len(cells) == 0.
//   - ErrMissingCell for short rows and nil cells.
//   - ErrNonScalar for non-numeric cells (and json.Number values that do not parse).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromCells(cells [][]any) (*Dense, error) {
	n := len(cells)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromCells, ErrBadShape)
	}

	m := newDense(n)
	var (
		i, j int
		v    float64
		ok   bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j >= len(cells[i]) || cells[i][j] == nil {
				return nil, ingestErrorf(ctxFromCells, i, j, ErrMissingCell)
			}
			if v, ok = scalarFloat(cells[i][j]); !ok {
				return nil, ingestErrorf(ctxFromCells, i, j, ErrNonScalar)
			}
			m.data[i*n+j] = v
		}
	}

	return m, nil
}

// FromGonum copies a gonum matrix into a new Dense.
// The order is the gonum row count; columns beyond it are ignored.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrBadShape when src has no rows.
//   - ErrMissingCell when src has fewer columns than rows.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrBadShape)
	}
	if c < r {
		return nil, ingestErrorf(ctxFromGonum, 0, c, ErrMissingCell)
	}

	m := newDense(r)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			m.data[i*r+j] = src.At(i, j)
		}
	}

	return m, nil
}

// ToGonum exports m as a freshly allocated *mat.Dense.
// Complexity: O(n²).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.n, m.n, cp)
}

// scalarFloat reports v as float64 when it is a scalar number.
func scalarFloat(v any) (float64, bool) {
	// json.Number is a string kind; handle it before the reflective path.
	if num, isNum := v.(json.Number); isNum {
		f, err := num.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
