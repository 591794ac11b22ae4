// SPDX-License-Identifier: MIT
package sparse

// assembleRows concatenates per-row column/value slices (already
// column-sorted and duplicate-free within each row) into a single CSR. It
// is the sequential merge step that follows a row-parallel sort or product
// pass: each row was computed independently by its own goroutine, and this
// function performs the prefix-sum bookkeeping to lay them out contiguously.
func assembleRows(rows, cols int, rowCols [][]int, rowVals [][]float64) *CSR {
	rowPtr := make([]int, rows+1)
	total := 0
	for i := 0; i < rows; i++ {
		rowPtr[i] = total
		total += len(rowCols[i])
	}
	rowPtr[rows] = total

	colInd := make([]int, total)
	val := make([]float64, total)
	for i := 0; i < rows; i++ {
		copy(colInd[rowPtr[i]:], rowCols[i])
		copy(val[rowPtr[i]:], rowVals[i])
	}

	return &CSR{Rows: rows, Cols: cols, RowPtr: rowPtr, ColInd: colInd, Val: val}
}
