// Package heat: sentinel error set.
// All operations return these sentinels (factorization failures additionally
// wrap the underlying sparse error) and callers match via errors.Is.

package heat

import "errors"

var (
	// ErrShapeMismatch indicates eigenpair dimensions inconsistent with each
	// other or with the requested truncation order n (n < 1, n > N,
	// len(evals) != eigenvector columns, or an empty time vector).
	ErrShapeMismatch = errors.New("heat: eigenpair dimensions inconsistent with request")

	// ErrVertexOutOfRange indicates a query or seed vertex index outside [0, V).
	ErrVertexOutOfRange = errors.New("heat: vertex index out of range")

	// ErrNonPositiveTime indicates a time value t <= 0 or non-finite; the
	// kernel is undefined there.
	ErrNonPositiveTime = errors.New("heat: time values must be positive and finite")

	// ErrUnsortedEigenvalues indicates the first n eigenvalues are not in
	// ascending order, so "first n" would not mean "smallest n".
	ErrUnsortedEigenvalues = errors.New("heat: eigenvalues must be sorted ascending")

	// ErrNoSeedVertices indicates an empty seed set for Diffusion.
	ErrNoSeedVertices = errors.New("heat: empty seed vertex set")

	// ErrNonPositiveMultiplier indicates a diffusion-time multiplier m <= 0.
	ErrNonPositiveMultiplier = errors.New("heat: diffusion multiplier must be positive")

	// ErrDegenerateMesh indicates a geometry whose average edge length is not
	// positive; the derived time step t = m·h² would be meaningless.
	ErrDegenerateMesh = errors.New("heat: degenerate mesh (non-positive average edge length)")

	// ErrCholeskyUnavailable is the configuration error for requesting the
	// Cholesky strategy in a build without the capability. It is raised
	// before any matrix assembly work.
	ErrCholeskyUnavailable = errors.New("heat: cholesky strategy requested but capability unavailable")

	// ErrFactorization wraps a strategy's factorization failure (singular or
	// indefinite system). There is no automatic fallback to the other
	// strategy; retrying differently is a caller-level policy.
	ErrFactorization = errors.New("heat: linear system factorization failed")

	// ErrNilGeometry indicates a nil geometry provider.
	ErrNilGeometry = errors.New("heat: nil geometry")

	// ErrNilAssembler indicates a nil matrix assembly provider.
	ErrNilAssembler = errors.New("heat: nil assembler")

	// ErrUnknownSolver indicates a Solver value outside the defined enum.
	ErrUnknownSolver = errors.New("heat: unknown solver choice")
)
