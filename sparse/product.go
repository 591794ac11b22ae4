// SPDX-License-Identifier: MIT
package sparse

import (
	"fmt"
	"sort"
)

// Product computes a*b, the standard row-by-row sparse GEMM: for each row i
// of a, the result row is the sum of b's rows scaled by a's entries in row
// i. Each goroutine spawned by Parallelize owns a dense accumulator of
// length b.Cols (spec's "per-thread workspace"), reused across the rows
// assigned to it, plus a touched-column list so only the columns actually
// written are read back out and sorted. Output rows are column-sorted.
func Product(a, b *CSR) (*CSR, error) {
	if a.Cols != b.Rows {
		return nil, fmt.Errorf("sparse: Product %dx%d * %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, ErrShapeMismatch)
	}

	rows := a.Rows
	outCols := make([][]int, rows)
	outVals := make([][]float64, rows)

	Parallelize(rows, func(lo, hi int) {
		acc := make([]float64, b.Cols)
		marker := make([]bool, b.Cols)
		touched := make([]int, 0, 32)

		for i := lo; i < hi; i++ {
			touched = touched[:0]
			aCols, aVals := a.Row(i)
			for k, ac := range aCols {
				av := aVals[k]
				bCols, bVals := b.Row(ac)
				for m, bc := range bCols {
					if !marker[bc] {
						marker[bc] = true
						touched = append(touched, bc)
					}
					acc[bc] += av * bVals[m]
				}
			}

			sort.Ints(touched)
			cols := make([]int, len(touched))
			vals := make([]float64, len(touched))
			for idx, c := range touched {
				cols[idx] = c
				vals[idx] = acc[c]
				acc[c] = 0
				marker[c] = false
			}
			outCols[i] = cols
			outVals[i] = vals
		}
	})

	return assembleRows(rows, b.Cols, outCols, outVals), nil
}

// ProductSparse computes a*b like Product, but accumulates each row into a
// map keyed by column instead of a dense length-b.Cols workspace. It trades
// per-row map overhead for memory when b is very wide and each output row
// is expected to stay narrow (e.g. coarsening operators far down the
// hierarchy), the "ordered map for memory-tight variants" alternative
// this package's accumulator design allows for.
func ProductSparse(a, b *CSR) (*CSR, error) {
	if a.Cols != b.Rows {
		return nil, fmt.Errorf("sparse: ProductSparse %dx%d * %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, ErrShapeMismatch)
	}

	rows := a.Rows
	outCols := make([][]int, rows)
	outVals := make([][]float64, rows)

	Parallelize(rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			acc := make(map[int]float64, 16)
			aCols, aVals := a.Row(i)
			for k, ac := range aCols {
				av := aVals[k]
				bCols, bVals := b.Row(ac)
				for m, bc := range bCols {
					acc[bc] += av * bVals[m]
				}
			}

			cols := make([]int, 0, len(acc))
			for c := range acc {
				cols = append(cols, c)
			}
			sort.Ints(cols)
			vals := make([]float64, len(cols))
			for idx, c := range cols {
				vals[idx] = acc[c]
			}
			outCols[i] = cols
			outVals[i] = vals
		}
	})

	return assembleRows(rows, b.Cols, outCols, outVals), nil
}
