//go:build lvlheat_nocholmod

package heat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheat/fem"
	"github.com/katalvlaran/lvlheat/heat"
	"github.com/katalvlaran/lvlheat/mesh"
	"github.com/katalvlaran/lvlheat/sparse"
)

// countingAssembler counts Assemble calls; the capability check must fire
// before any assembly work.
type countingAssembler struct {
	calls int
	inner heat.Assembler
}

func (c *countingAssembler) Assemble(lump bool) (*sparse.CSR, *sparse.CSR, error) {
	c.calls++

	return c.inner.Assemble(lump)
}

// TestDiffusion_CholeskyUnavailable: in a lvlheat_nocholmod build, requesting
// the Cholesky strategy is a configuration error raised before assembly, and
// the LU default keeps working.
func TestDiffusion_CholeskyUnavailable(t *testing.T) {
	require.False(t, sparse.CholeskyAvailable())

	m, err := mesh.NewTriaMesh(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[][3]int{{0, 1, 2}, {0, 2, 3}},
	)
	require.NoError(t, err)
	asm, err := fem.NewTria(m)
	require.NoError(t, err)
	counter := &countingAssembler{inner: asm}

	_, err = heat.Diffusion(m, counter, []int{0}, heat.WithSolver(heat.SolverCholesky))
	assert.ErrorIs(t, err, heat.ErrCholeskyUnavailable)
	assert.Zero(t, counter.calls, "capability failure must precede assembly")

	x, err := heat.Diffusion(m, counter, []int{0}, heat.WithSolver(heat.SolverLU))
	require.NoError(t, err)
	assert.Equal(t, 4, x.Len())
	assert.Equal(t, 1, counter.calls)
}

// TestCholeskyStub_Errors pins the disabled kernel's sentinel.
func TestCholeskyStub_Errors(t *testing.T) {
	var ch sparse.Cholesky
	assert.ErrorIs(t, ch.Factorize(nil), sparse.ErrCholeskyDisabled)

	_, err := ch.SolveVec(nil)
	assert.ErrorIs(t, err, sparse.ErrCholeskyDisabled)
}
