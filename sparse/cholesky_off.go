// SPDX-License-Identifier: MIT

//go:build lvlheat_nocholmod

package sparse

// CholeskyAvailable reports whether the sparse Cholesky kernel was compiled
// into this build. This build carries the lvlheat_nocholmod tag, so it is
// permanently false and every Cholesky call fails with ErrCholeskyDisabled.
func CholeskyAvailable() bool { return false }

// Cholesky is the disabled stand-in for the sparse Cholesky factorization.
// It preserves the exported surface so callers compile unchanged; every
// operation reports ErrCholeskyDisabled.
type Cholesky struct{}

// Factorize always fails with ErrCholeskyDisabled in this build.
func (ch *Cholesky) Factorize(_ *CSR) error { return ErrCholeskyDisabled }

// SolveVec always fails with ErrCholeskyDisabled in this build.
func (ch *Cholesky) SolveVec(_ []float64) ([]float64, error) {
	return nil, ErrCholeskyDisabled
}
