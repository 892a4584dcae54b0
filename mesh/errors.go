package mesh

import "errors"

var (
	// ErrNoVertices is returned when a mesh is constructed without vertices.
	ErrNoVertices = errors.New("mesh: no vertices")

	// ErrNoElements is returned when a mesh is constructed without elements.
	ErrNoElements = errors.New("mesh: no elements")

	// ErrBadVertexIndex indicates an element references a vertex outside [0, V).
	ErrBadVertexIndex = errors.New("mesh: element vertex index out of range")
)
