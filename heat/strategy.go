package heat

import (
	"fmt"

	"github.com/katalvlaran/lvlheat/sparse"
)

// linearStrategy is the "factorize H and solve H·x = b" capability the
// diffusion solve dispatches to. Implementations must treat h and b as
// read-only and return a fresh solution vector.
type linearStrategy interface {
	name() string
	factorSolve(h *sparse.CSR, b []float64) ([]float64, error)
}

// pickStrategy maps the Solver enum onto a concrete strategy. The Cholesky
// capability is availability-checked by Diffusion before assembly, not here.
func pickStrategy(s Solver) (linearStrategy, error) {
	switch s {
	case SolverLU:
		return luStrategy{}, nil
	case SolverCholesky:
		return choleskyStrategy{}, nil
	default:
		return nil, ErrUnknownSolver
	}
}

// luStrategy solves via sparse LU with partial pivoting.
type luStrategy struct{}

func (luStrategy) name() string { return SolverLU.String() }

func (luStrategy) factorSolve(h *sparse.CSR, b []float64) ([]float64, error) {
	var lu sparse.LU
	if err := lu.Factorize(h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFactorization, err)
	}

	return lu.SolveVec(b)
}

// choleskyStrategy solves via the optional sparse Cholesky capability; it
// assumes the system is symmetric positive definite.
type choleskyStrategy struct{}

func (choleskyStrategy) name() string { return SolverCholesky.String() }

func (choleskyStrategy) factorSolve(h *sparse.CSR, b []float64) ([]float64, error) {
	var ch sparse.Cholesky
	if err := ch.Factorize(h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFactorization, err)
	}

	return ch.SolveVec(b)
}
