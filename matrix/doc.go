// Package matrix holds dense, square distance matrices for the MST engine.
//
// The matrix package provides:
//
//   - Dense: an immutable n×n row-major buffer with bounds-checked At/Row.
//   - Ingestion: FromRows ([][]float64), FromCells ([][]any, e.g. decoded
//     JSON) and FromGonum (any gonum mat.Matrix). Each copies the source and
//     reports ErrBadShape, ErrMissingCell or ErrNonScalar with the offending
//     coordinates.
//   - Opt-in validators: ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal.
//
// Ingestion deliberately accepts asymmetric, negative, NaN and ±Inf values:
// it checks structure, not metric properties.
//
// See the examples in this package and in kruskal for usage patterns.
package matrix
