package heat

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Diagonal computes the heat-kernel diagonal K(t, p, p) at the queried
// vertices for each time value, truncated to the n smallest eigenpairs:
//
//	K(t_k, p, p) = Σ_{j<n} evecs[p,j]² · exp(−evals[j]·t_k)
//
// Algorithm Outline:
//  1. Validate shapes, indices, times, and that evals[0..n) is ascending.
//  2. Form S (X×n), the squared eigenvector entries at the queried vertices,
//     and E (n×T) with E[j,k] = exp(−evals[j]·t_k).
//  3. Return S·E.
//
// The matrix-product form exploits the separability of the sum of
// exponentials: O(X·n·T) work instead of materializing the full pairwise
// kernel. Row i of the result corresponds to x[i], column k to t[k].
//
// Inputs are read-only; the result is freshly allocated.
//
// Errors: ErrShapeMismatch, ErrVertexOutOfRange, ErrNonPositiveTime,
// ErrUnsortedEigenvalues.
func Diagonal(t []float64, x []int, evecs mat.Matrix, evals []float64, n int) (*mat.Dense, error) {
	nv, err := checkEigenpairs(evecs, evals, n)
	if err != nil {
		return nil, err
	}
	if err = checkTimes(t); err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return nil, ErrShapeMismatch
	}
	for _, p := range x {
		if p < 0 || p >= nv {
			return nil, ErrVertexOutOfRange
		}
	}

	sq := mat.NewDense(len(x), n, nil)
	for i, p := range x {
		for j := 0; j < n; j++ {
			e := evecs.At(p, j)
			sq.Set(i, j, e*e)
		}
	}

	var out mat.Dense
	out.Mul(sq, expTable(evals, t, n))

	return &out, nil
}

// Kernel computes the full heat-kernel column K_t(·, vfix) for one fixed
// vertex, truncated to the n smallest eigenpairs:
//
//	K_t(p, vfix) = Σ_{j<n} exp(−evals[j]·t) · evecs[p,j] · evecs[vfix,j]
//
// Evaluated as the (V×n) eigenvector block times an (n×T) matrix formed by
// the elementwise product of exp(−evals·t) with the fixed vertex's
// eigenvector row. Rows of the result span all V vertices, columns the time
// values. Same contract and error policy as Diagonal.
func Kernel(t []float64, vfix int, evecs mat.Matrix, evals []float64, n int) (*mat.Dense, error) {
	nv, err := checkEigenpairs(evecs, evals, n)
	if err != nil {
		return nil, err
	}
	if err = checkTimes(t); err != nil {
		return nil, err
	}
	if vfix < 0 || vfix >= nv {
		return nil, ErrVertexOutOfRange
	}

	block := mat.NewDense(nv, n, nil)
	for p := 0; p < nv; p++ {
		for j := 0; j < n; j++ {
			block.Set(p, j, evecs.At(p, j))
		}
	}

	w := expTable(evals, t, n)
	for j := 0; j < n; j++ {
		f := evecs.At(vfix, j)
		for k := 0; k < len(t); k++ {
			w.Set(j, k, f*w.At(j, k))
		}
	}

	var out mat.Dense
	out.Mul(block, w)

	return &out, nil
}

// expTable builds the (n×T) decay table E[j,k] = exp(−evals[j]·t[k]).
func expTable(evals, t []float64, n int) *mat.Dense {
	e := mat.NewDense(n, len(t), nil)
	for j := 0; j < n; j++ {
		for k := range t {
			e.Set(j, k, math.Exp(-evals[j]*t[k]))
		}
	}

	return e
}

// checkEigenpairs validates the eigenpair set against the truncation order
// and returns the vertex count V. Sortedness of the first n eigenvalues is
// validated (O(n)) rather than trusted: a violated precondition here yields
// silently wrong kernels, the worst failure mode available.
func checkEigenpairs(evecs mat.Matrix, evals []float64, n int) (int, error) {
	if evecs == nil {
		return 0, ErrShapeMismatch
	}
	nv, ncols := evecs.Dims()
	if len(evals) != ncols {
		return 0, ErrShapeMismatch
	}
	if n < 1 || n > ncols {
		return 0, ErrShapeMismatch
	}
	for j := 1; j < n; j++ {
		if evals[j] < evals[j-1] {
			return 0, ErrUnsortedEigenvalues
		}
	}

	return nv, nil
}

// checkTimes validates the time vector: non-empty, every value finite and > 0.
func checkTimes(t []float64) error {
	if len(t) == 0 {
		return ErrShapeMismatch
	}
	for _, tv := range t {
		if !(tv > 0) || math.IsInf(tv, 1) || math.IsNaN(tv) {
			return ErrNonPositiveTime
		}
	}

	return nil
}
