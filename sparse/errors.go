// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All public operations MUST return these sentinels (optionally wrapped with
// fmt.Errorf("Op: %w", err) at facade boundaries) and callers match them via
// errors.Is. No operation panics on user-triggered conditions.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r <= 0 or c <= 0).
	// Builders must validate before any allocation.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, dim).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. AddScaled on different shapes or MulVec with a wrong-length vector.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but not supplied.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil *CSR (receiver or argument).
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNotFactorized indicates SolveVec was called before a successful Factorize.
	ErrNotFactorized = errors.New("sparse: factorization not computed")

	// ErrSingular is returned by LU when no usable pivot remains in a column:
	// the matrix is singular to working precision.
	ErrSingular = errors.New("sparse: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky on a non-positive pivot:
	// the matrix is not symmetric positive definite.
	ErrNotPositiveDefinite = errors.New("sparse: matrix is not positive definite")

	// ErrCholeskyDisabled is returned by the Cholesky kernel when the package
	// was built with the lvlheat_nocholmod tag. Query CholeskyAvailable first.
	ErrCholeskyDisabled = errors.New("sparse: cholesky support compiled out")
)
