package mesh_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlheat/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitSquare is the 4-vertex unit square split along the (0,0)–(1,1) diagonal.
func unitSquare(t *testing.T) *mesh.TriaMesh {
	t.Helper()
	m, err := mesh.NewTriaMesh(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[][3]int{{0, 1, 2}, {0, 2, 3}},
	)
	require.NoError(t, err)

	return m
}

// TestNewTriaMesh_Validation covers the constructor failure modes.
func TestNewTriaMesh_Validation(t *testing.T) {
	_, err := mesh.NewTriaMesh(nil, [][3]int{{0, 1, 2}})
	assert.ErrorIs(t, err, mesh.ErrNoVertices)

	pts := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	_, err = mesh.NewTriaMesh(pts, nil)
	assert.ErrorIs(t, err, mesh.ErrNoElements)

	_, err = mesh.NewTriaMesh(pts, [][3]int{{0, 1, 3}})
	assert.ErrorIs(t, err, mesh.ErrBadVertexIndex)
}

// TestTriaMesh_AvgEdgeLength checks the per-face edge average on the unit
// square: four unit edges plus the diagonal counted once per incident face.
func TestTriaMesh_AvgEdgeLength(t *testing.T) {
	m := unitSquare(t)
	assert.Equal(t, 4, m.VertexCount())

	want := (4 + 2*math.Sqrt2) / 6
	assert.InDelta(t, want, m.AvgEdgeLength(), 1e-15)
}

// TestTetMesh_AvgEdgeLength checks the reference tetrahedron: three unit
// axis edges and three √2 diagonals.
func TestTetMesh_AvgEdgeLength(t *testing.T) {
	m, err := mesh.NewTetMesh(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][4]int{{0, 1, 2, 3}},
	)
	require.NoError(t, err)

	assert.Equal(t, 4, m.VertexCount())
	want := (3 + 3*math.Sqrt2) / 6
	assert.InDelta(t, want, m.AvgEdgeLength(), 1e-15)
}

// TestNewTetMesh_Validation covers the constructor failure modes.
func TestNewTetMesh_Validation(t *testing.T) {
	pts := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	_, err := mesh.NewTetMesh(nil, [][4]int{{0, 1, 2, 3}})
	assert.ErrorIs(t, err, mesh.ErrNoVertices)

	_, err = mesh.NewTetMesh(pts, nil)
	assert.ErrorIs(t, err, mesh.ErrNoElements)

	_, err = mesh.NewTetMesh(pts, [][4]int{{0, 1, 2, 4}})
	assert.ErrorIs(t, err, mesh.ErrBadVertexIndex)
}
