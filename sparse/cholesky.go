// SPDX-License-Identifier: MIT

//go:build !lvlheat_nocholmod

package sparse

import "math"

// CholeskyAvailable reports whether the sparse Cholesky kernel was compiled
// into this build. It is false only under the lvlheat_nocholmod build tag.
// Callers that prefer Cholesky must query this before doing any setup work.
func CholeskyAvailable() bool { return true }

// Cholesky is an up-looking sparse Cholesky factorization A = L·Lᵀ for
// symmetric positive-definite matrices.
//
// Algorithm Outline:
//  1. For each row i, scatter the lower-triangular entries of A's row i into
//     a dense scratch vector x.
//  2. Sweep columns j < i ascending: each nonzero x[j] yields L[i,j] =
//     x[j] / L[j,j]; its contribution is pushed forward through the stored
//     column j of L (x[r] -= L[i,j]·L[r,j]).
//  3. The diagonal pivot is L[i,i] = sqrt(A[i,i] − Σ_j L[i,j]²); a
//     non-positive radicand means A is not positive definite.
//
// L is stored column-wise (strict lower part plus a dense diagonal), which
// makes both the factorization updates and the two triangular solves simple
// scatter loops. No fill-reducing ordering is applied.
//
// Complexity: O(n² + fill) time, O(n + fill) memory.
//
// Errors:
//   - ErrNotPositiveDefinite — non-positive pivot encountered.
//   - ErrNonSquare / ErrNilMatrix — malformed input.
type Cholesky struct {
	n      int
	colRow [][]int     // strict-lower row indices per column, ascending
	colVal [][]float64 // matching L values
	diag   []float64   // L[j,j]
	ok     bool
}

// Factorize computes the decomposition of a, reading only its lower triangle
// (a is assumed symmetric; symmetry is the caller's contract, as with any
// Cholesky routine). The input matrix is not mutated.
func (ch *Cholesky) Factorize(a *CSR) error {
	if a == nil {
		return ErrNilMatrix
	}
	if a.rows != a.cols {
		return ErrNonSquare
	}

	n := a.rows
	ch.n = n
	ch.ok = false
	ch.colRow = make([][]int, n)
	ch.colVal = make([][]float64, n)
	ch.diag = make([]float64, n)

	x := make([]float64, n) // dense scratch, zero outside the active row
	for i := 0; i < n; i++ {
		aii := 0.0
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			switch j := a.colIdx[k]; {
			case j < i:
				x[j] = a.data[k]
			case j == i:
				aii = a.data[k]
			}
		}

		sq := 0.0
		for j := 0; j < i; j++ {
			v := x[j]
			if v == 0 {
				continue
			}
			lij := v / ch.diag[j]
			rows, vals := ch.colRow[j], ch.colVal[j]
			for q := range rows {
				x[rows[q]] -= lij * vals[q]
			}
			ch.colRow[j] = append(ch.colRow[j], i)
			ch.colVal[j] = append(ch.colVal[j], lij)
			sq += lij * lij
			x[j] = 0
		}

		d2 := aii - sq
		if d2 <= 0 || math.IsNaN(d2) {
			return ErrNotPositiveDefinite
		}
		ch.diag[i] = math.Sqrt(d2)
	}
	ch.ok = true

	return nil
}

// SolveVec solves A·x = b for one right-hand side using the stored factors
// (forward solve with L, back solve with Lᵀ). b is not mutated.
// Returns ErrNotFactorized before a successful Factorize and
// ErrDimensionMismatch when len(b) != n.
func (ch *Cholesky) SolveVec(b []float64) ([]float64, error) {
	if !ch.ok {
		return nil, ErrNotFactorized
	}
	if len(b) != ch.n {
		return nil, ErrDimensionMismatch
	}

	z := make([]float64, ch.n)
	copy(z, b)

	// L·z' = b (column-oriented forward substitution).
	for j := 0; j < ch.n; j++ {
		z[j] /= ch.diag[j]
		rows, vals := ch.colRow[j], ch.colVal[j]
		for q := range rows {
			z[rows[q]] -= vals[q] * z[j]
		}
	}

	// Lᵀ·x = z' (back substitution; column j of L is row j of Lᵀ).
	for j := ch.n - 1; j >= 0; j-- {
		rows, vals := ch.colRow[j], ch.colVal[j]
		s := z[j]
		for q := range rows {
			s -= vals[q] * z[rows[q]]
		}
		z[j] = s / ch.diag[j]
	}

	return z, nil
}
