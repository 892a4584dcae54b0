// Package mesh carries the discrete geometry consumed by the heat core:
// triangulated surfaces (TriaMesh) and tetrahedral volumes (TetMesh).
//
// 🚀 What is mesh?
//
//	The thinnest possible geometry layer:
//	  • vertex tables ([][3]float64) plus element index tables
//	  • VertexCount / AvgEdgeLength — the exact surface the diffusion
//	    solver needs to derive its time step t = m·h²
//	  • constructor-time validation (index ranges, non-emptiness)
//
// Both mesh types are plain data: no adjacency structures, no mutation API,
// no locking. Construct once, read from many goroutines freely.
//
// AvgEdgeLength averages the element-local edge lengths (3 per triangle,
// 6 per tetrahedron) over all elements; interior edges shared by several
// elements count once per incident element. This matches how the diffusion
// time step is conventionally tied to mesh resolution.
package mesh
