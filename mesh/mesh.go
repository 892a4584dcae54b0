package mesh

import "math"

// TriaMesh is a triangulated surface: a vertex table and a triangle table of
// vertex indices. Plain data — validated at construction, immutable after.
type TriaMesh struct {
	Points [][3]float64
	Trias  [][3]int
}

// NewTriaMesh validates and wraps a vertex/triangle table pair.
// Returns ErrNoVertices, ErrNoElements or ErrBadVertexIndex on malformed input.
func NewTriaMesh(points [][3]float64, trias [][3]int) (*TriaMesh, error) {
	if len(points) == 0 {
		return nil, ErrNoVertices
	}
	if len(trias) == 0 {
		return nil, ErrNoElements
	}
	for _, tr := range trias {
		for _, v := range tr {
			if v < 0 || v >= len(points) {
				return nil, ErrBadVertexIndex
			}
		}
	}

	return &TriaMesh{Points: points, Trias: trias}, nil
}

// VertexCount reports the number of vertices V.
func (m *TriaMesh) VertexCount() int { return len(m.Points) }

// AvgEdgeLength returns the mean length of the three edges of every triangle
// (edges shared by two triangles count twice, once per incident face).
func (m *TriaMesh) AvgEdgeLength() float64 {
	sum := 0.0
	for _, tr := range m.Trias {
		sum += dist(m.Points[tr[0]], m.Points[tr[1]])
		sum += dist(m.Points[tr[1]], m.Points[tr[2]])
		sum += dist(m.Points[tr[2]], m.Points[tr[0]])
	}

	return sum / float64(3*len(m.Trias))
}

// TetMesh is a tetrahedral volume: a vertex table and a tetrahedron table.
type TetMesh struct {
	Points [][3]float64
	Tets   [][4]int
}

// NewTetMesh validates and wraps a vertex/tetrahedron table pair.
// Returns ErrNoVertices, ErrNoElements or ErrBadVertexIndex on malformed input.
func NewTetMesh(points [][3]float64, tets [][4]int) (*TetMesh, error) {
	if len(points) == 0 {
		return nil, ErrNoVertices
	}
	if len(tets) == 0 {
		return nil, ErrNoElements
	}
	for _, te := range tets {
		for _, v := range te {
			if v < 0 || v >= len(points) {
				return nil, ErrBadVertexIndex
			}
		}
	}

	return &TetMesh{Points: points, Tets: tets}, nil
}

// VertexCount reports the number of vertices V.
func (m *TetMesh) VertexCount() int { return len(m.Points) }

// AvgEdgeLength returns the mean length of the six edges of every tetrahedron.
func (m *TetMesh) AvgEdgeLength() float64 {
	sum := 0.0
	for _, te := range m.Tets {
		sum += dist(m.Points[te[0]], m.Points[te[1]])
		sum += dist(m.Points[te[0]], m.Points[te[2]])
		sum += dist(m.Points[te[0]], m.Points[te[3]])
		sum += dist(m.Points[te[1]], m.Points[te[2]])
		sum += dist(m.Points[te[1]], m.Points[te[3]])
		sum += dist(m.Points[te[2]], m.Points[te[3]])
	}

	return sum / float64(6*len(m.Tets))
}

func dist(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
