// SPDX-License-Identifier: MIT
package sparse

import "sort"

// SortRows reorders the entries of every row of a into ascending column
// order, in place. Duplicate column entries within a row (not expected from
// a well-formed builder, but not assumed absent) are merged by summation
// rather than dropped, per the package's determinism policy.
//
// Each row is sorted independently on its own goroutine (Parallelize); the
// sorted, deduplicated rows are then concatenated by a single sequential
// pass that rebuilds RowPtr.
func SortRows(a *CSR) {
	rows := a.Rows
	outCols := make([][]int, rows)
	outVals := make([][]float64, rows)

	Parallelize(rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			cols, vals := a.Row(i)
			n := len(cols)
			if n == 0 {
				outCols[i] = nil
				outVals[i] = nil
				continue
			}

			idx := make([]int, n)
			for k := range idx {
				idx[k] = k
			}
			sort.SliceStable(idx, func(x, y int) bool {
				return cols[idx[x]] < cols[idx[y]]
			})

			oc := make([]int, 0, n)
			ov := make([]float64, 0, n)
			for _, k := range idx {
				c, v := cols[k], vals[k]
				if len(oc) > 0 && oc[len(oc)-1] == c {
					ov[len(ov)-1] += v
				} else {
					oc = append(oc, c)
					ov = append(ov, v)
				}
			}
			outCols[i] = oc
			outVals[i] = ov
		}
	})

	sorted := assembleRows(rows, a.Cols, outCols, outVals)
	a.RowPtr, a.ColInd, a.Val = sorted.RowPtr, sorted.ColInd, sorted.Val
}
