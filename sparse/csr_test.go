package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvlheat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCSR assembles a CSR from dense row data; zero entries are skipped so
// the sparsity pattern matches the dense mask.
func buildCSR(t *testing.T, rows [][]float64) *sparse.CSR {
	t.Helper()
	c, err := sparse.NewCOO(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				require.NoError(t, c.Append(i, j, v))
			}
		}
	}

	return c.ToCSR()
}

// TestCSR_AtAndBounds checks stored/absent lookups and index validation.
func TestCSR_AtAndBounds(t *testing.T) {
	m := buildCSR(t, [][]float64{
		{2, 0, 1},
		{0, 3, 0},
	})

	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestCSR_MulVec checks y = A·x against hand arithmetic and shape validation.
func TestCSR_MulVec(t *testing.T) {
	m := buildCSR(t, [][]float64{
		{2, 0, 1},
		{0, 3, 0},
		{4, 0, 5},
	})

	y, err := m.MulVec([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 19}, y)

	_, err = m.MulVec([]float64{1, 2})
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestCSR_AddScaled covers the pattern union, the scaling of the second
// operand, and exact cancellation staying as a stored zero.
func TestCSR_AddScaled(t *testing.T) {
	a := buildCSR(t, [][]float64{
		{1, 0},
		{0, 2},
	})
	b := buildCSR(t, [][]float64{
		{0, 3},
		{-1, 2},
	})

	c, err := a.AddScaled(b, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 4, c.NNZ(), "pattern union of both operands")

	want := [][]float64{
		{1, 6},
		{-2, 6},
	}
	for i := range want {
		for j := range want[i] {
			v, errAt := c.At(i, j)
			require.NoError(t, errAt)
			assert.InDelta(t, want[i][j], v, 1e-15, "entry (%d,%d)", i, j)
		}
	}

	// Shapes must agree.
	tall := buildCSR(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	_, err = a.AddScaled(tall, 1.0)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestCSR_Diagonal extracts diagonals from square and rectangular matrices.
func TestCSR_Diagonal(t *testing.T) {
	m := buildCSR(t, [][]float64{
		{7, 1, 0},
		{0, 0, 2},
	})
	assert.Equal(t, []float64{7, 0}, m.Diagonal())
}

// TestCSR_AddScaled_InputsUntouched guards the no-mutation contract.
func TestCSR_AddScaled_InputsUntouched(t *testing.T) {
	a := buildCSR(t, [][]float64{{1, 0}, {0, 1}})
	b := buildCSR(t, [][]float64{{0, 1}, {1, 0}})

	_, err := a.AddScaled(b, 5.0)
	require.NoError(t, err)

	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	v, err = b.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
