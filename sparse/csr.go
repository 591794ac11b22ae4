// SPDX-License-Identifier: MIT
package sparse

import "fmt"

// CSR is a sparse matrix in compressed-sparse-row format.
//
// RowPtr has length Rows+1 with RowPtr[0] == 0 and RowPtr[Rows] == len(Val).
// ColInd and Val hold, for each row i, the entries at indices
// [RowPtr[i], RowPtr[i+1]). Kernels in this package require rows to be
// column-sorted; SortRows establishes that invariant for a freshly-built
// matrix.
type CSR struct {
	Rows, Cols int
	RowPtr     []int
	ColInd     []int
	Val        []float64
}

// NewCSR allocates an empty rows x cols matrix (no stored entries).
func NewCSR(rows, cols int) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CSR{
		Rows:   rows,
		Cols:   cols,
		RowPtr: make([]int, rows+1),
	}, nil
}

// NNZ returns the number of stored (explicit) entries.
func (a *CSR) NNZ() int {
	return len(a.Val)
}

// IsSquare reports whether the matrix has equal row and column counts.
func (a *CSR) IsSquare() bool {
	return a.Rows == a.Cols
}

// Row returns views into the column indices and values of row i. The
// returned slices alias the matrix's backing storage and must not be
// retained across a mutation of a.
func (a *CSR) Row(i int) (cols []int, vals []float64) {
	lo, hi := a.RowPtr[i], a.RowPtr[i+1]
	return a.ColInd[lo:hi], a.Val[lo:hi]
}

// At returns the value stored at (row, col), or 0 if no entry is stored
// there. Rows must be column-sorted for this to be correct; it binary
// searches the row's column indices.
func (a *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= a.Rows || col < 0 || col >= a.Cols {
		return 0, fmt.Errorf("sparse: At(%d,%d): %w", row, col, ErrIndexOutOfRange)
	}
	cols, vals := a.Row(row)
	lo, hi := 0, len(cols)
	for lo < hi {
		mid := (lo + hi) / 2
		if cols[mid] < col {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(cols) && cols[lo] == col {
		return vals[lo], nil
	}
	return 0, nil
}

// Clone returns a deep copy of a.
func (a *CSR) Clone() *CSR {
	b := &CSR{
		Rows:   a.Rows,
		Cols:   a.Cols,
		RowPtr: append([]int(nil), a.RowPtr...),
		ColInd: append([]int(nil), a.ColInd...),
		Val:    append([]float64(nil), a.Val...),
	}
	return b
}

// String renders a's shape and nonzero count, for diagnostics and log lines.
func (a *CSR) String() string {
	return fmt.Sprintf("sparse.CSR{%dx%d, nnz=%d}", a.Rows, a.Cols, a.NNZ())
}
