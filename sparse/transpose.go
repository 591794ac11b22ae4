// SPDX-License-Identifier: MIT
package sparse

// Transpose returns B such that B[j,i] = A[i,j], with column-sorted rows.
//
// This is a classic counting-sort transpose: a histogram of column counts
// becomes B's RowPtr via prefix sum, then a single scatter pass places each
// entry. The scatter pass touches a shared per-destination-row cursor, so
// unlike the row kernels in this package it is not parallelized over rows
// of A — it runs once per level during setup, not on the cycle hot path,
// and is bandwidth-bound rather than compute-bound.
func Transpose(a *CSR) *CSR {
	rows, cols := a.Rows, a.Cols
	nnz := len(a.Val)

	rowPtr := make([]int, cols+1)
	for _, c := range a.ColInd {
		rowPtr[c+1]++
	}
	for i := 1; i <= cols; i++ {
		rowPtr[i] += rowPtr[i-1]
	}

	cursor := make([]int, cols)
	copy(cursor, rowPtr[:cols])

	colInd := make([]int, nnz)
	val := make([]float64, nnz)
	for i := 0; i < rows; i++ {
		lo, hi := a.RowPtr[i], a.RowPtr[i+1]
		for k := lo; k < hi; k++ {
			c := a.ColInd[k]
			dst := cursor[c]
			colInd[dst] = i
			val[dst] = a.Val[k]
			cursor[c]++
		}
	}

	// Entries land in each destination row in order of increasing original
	// row index i, which is already ascending column order for B.
	return &CSR{Rows: cols, Cols: rows, RowPtr: rowPtr, ColInd: colInd, Val: val}
}
