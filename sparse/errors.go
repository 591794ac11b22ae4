// SPDX-License-Identifier: MIT
package sparse

import "errors"

// Sentinel errors returned by the sparse package. Callers should match them
// with errors.Is rather than comparing error strings.
var (
	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. Product where a.Cols != b.Rows, or SpMV where len(x) != a.Cols.
	ErrShapeMismatch = errors.New("sparse: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input
	// was not.
	ErrNotSquare = errors.New("sparse: matrix is not square")

	// ErrIndexOutOfRange indicates a row or column index outside valid bounds.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidDimensions indicates requested matrix dimensions are <= 0.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")
)
