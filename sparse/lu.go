// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"sort"
)

// LU is a sparse LU factorization with partial pivoting, P·A = L·U.
//
// Algorithm Outline:
//  1. Scatter A's rows into hash-map work rows (column → value).
//  2. At step k, pick the remaining row with the largest |entry| in column k
//     (partial pivoting) and swap it into position k of the permutation.
//  3. Freeze the pivot row's entries j ≥ k as row k of U (sorted columns);
//     eliminate column k from every remaining row, recording the multipliers
//     as L entries attached to the physical row (they travel with the row
//     through later swaps, as in any pivoted LU).
//  4. A step with no nonzero candidate pivot means A is singular to working
//     precision.
//
// Tolerant of symmetric positive-semidefinite systems in practice, unlike
// Cholesky, at roughly twice the arithmetic. No fill-reducing ordering.
//
// Complexity: O(n·nnz + fill²/n) typical, O(n³) worst case.
//
// Errors:
//   - ErrSingular — no usable pivot in some column.
//   - ErrNonSquare / ErrNilMatrix — malformed input.
type LU struct {
	n    int
	perm []int // step k solved with original row perm[k]

	// L multipliers in elimination-step order: lIdx[k] lists earlier steps c,
	// lVal[k] the multiplier applied against step c while eliminating row perm[k].
	lIdx [][]int
	lVal [][]float64

	// U rows per step: ascending original-column indices, uIdx[k][0] == k is
	// the pivot position.
	uIdx [][]int
	uVal [][]float64

	ok bool
}

// Factorize computes the pivoted decomposition of a. The input is not mutated.
func (lu *LU) Factorize(a *CSR) error {
	if a == nil {
		return ErrNilMatrix
	}
	if a.rows != a.cols {
		return ErrNonSquare
	}

	n := a.rows
	lu.n = n
	lu.ok = false
	lu.perm = make([]int, n)
	lu.lIdx = make([][]int, n)
	lu.lVal = make([][]float64, n)
	lu.uIdx = make([][]int, n)
	lu.uVal = make([][]float64, n)

	// Work rows and per-physical-row L accumulators.
	work := make([]map[int]float64, n)
	lIdxPhys := make([][]int, n)
	lValPhys := make([][]float64, n)
	for i := 0; i < n; i++ {
		lu.perm[i] = i
		row := make(map[int]float64, a.rowPtr[i+1]-a.rowPtr[i])
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			row[a.colIdx[k]] = a.data[k]
		}
		work[i] = row
	}

	for k := 0; k < n; k++ {
		// Partial pivoting on column k.
		piv, best := -1, 0.0
		for i := k; i < n; i++ {
			if v, hit := work[lu.perm[i]][k]; hit && math.Abs(v) > best {
				best = math.Abs(v)
				piv = i
			}
		}
		if piv < 0 || best == 0 {
			return ErrSingular
		}
		lu.perm[k], lu.perm[piv] = lu.perm[piv], lu.perm[k]
		pr := lu.perm[k]

		// Freeze row k of U.
		prow := work[pr]
		cols := make([]int, 0, len(prow))
		for j := range prow {
			if j >= k {
				cols = append(cols, j)
			}
		}
		sort.Ints(cols)
		vals := make([]float64, len(cols))
		for q, j := range cols {
			vals[q] = prow[j]
		}
		lu.uIdx[k], lu.uVal[k] = cols, vals
		pv := vals[0] // cols[0] == k by construction

		// Eliminate column k from the remaining rows.
		for i := k + 1; i < n; i++ {
			ri := lu.perm[i]
			row := work[ri]
			v, hit := row[k]
			if !hit || v == 0 {
				continue
			}
			f := v / pv
			delete(row, k)
			for q := 1; q < len(cols); q++ {
				row[cols[q]] -= f * vals[q]
			}
			lIdxPhys[ri] = append(lIdxPhys[ri], k)
			lValPhys[ri] = append(lValPhys[ri], f)
		}
	}

	// Reorder L from physical rows into elimination-step order.
	for k := 0; k < n; k++ {
		lu.lIdx[k] = lIdxPhys[lu.perm[k]]
		lu.lVal[k] = lValPhys[lu.perm[k]]
	}
	lu.ok = true

	return nil
}

// SolveVec solves A·x = b for one right-hand side: permute b, forward solve
// with the unit-lower multipliers, back-substitute with U. b is not mutated.
// Returns ErrNotFactorized before a successful Factorize and
// ErrDimensionMismatch when len(b) != n.
func (lu *LU) SolveVec(b []float64) ([]float64, error) {
	if !lu.ok {
		return nil, ErrNotFactorized
	}
	if len(b) != lu.n {
		return nil, ErrDimensionMismatch
	}

	// L·z = P·b (L has an implicit unit diagonal).
	z := make([]float64, lu.n)
	for k := 0; k < lu.n; k++ {
		s := b[lu.perm[k]]
		idx, val := lu.lIdx[k], lu.lVal[k]
		for q := range idx {
			s -= val[q] * z[idx[q]]
		}
		z[k] = s
	}

	// U·x = z.
	x := make([]float64, lu.n)
	for k := lu.n - 1; k >= 0; k-- {
		idx, val := lu.uIdx[k], lu.uVal[k]
		s := z[k]
		for q := 1; q < len(idx); q++ {
			s -= val[q] * x[idx[q]]
		}
		x[k] = s / val[0]
	}

	return x, nil
}
