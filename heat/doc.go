// Package heat computes heat-kernel quantities on discretized manifolds from
// a truncated Laplace eigen-decomposition, and time-domain heat diffusion via
// a single backward-Euler solve over a finite-element system.
//
// 🚀 What is heat?
//
//	The numerical core behind diffusion-based geometry processing (shape
//	descriptors, diffusion distances, heat-based skeletonization):
//	  • Diagonal — K(t, p, p) at selected vertices, one column per time
//	  • Kernel   — the full column K_t(·, vfix) for one fixed vertex
//	  • Diffusion — heat spread from seed vertices after t = m·h², where h
//	    is the mesh's average edge length, so results are comparable across
//	    meshes of different resolution
//
// ✨ Design:
//   - Pure evaluators: eigenpairs are supplied by the caller (this package
//     never eigensolves), inputs are read-only, outputs freshly allocated.
//   - Pluggable linear-system strategy: sparse LU (default, tolerant of
//     semidefinite systems) or sparse Cholesky (requires the capability to
//     be compiled in; availability is checked before any assembly work).
//   - No fallback between strategies — silent algorithm substitution would
//     change numerical semantics without caller consent.
//   - All operations are synchronous and allocation-fresh; no caching, no
//     global state, no locking. Wrap calls externally for cancellation.
//
// ⚙️ Usage:
//
//	m, _ := mesh.NewTriaMesh(points, trias)
//	fe, _ := fem.NewTria(m)
//	field, err := heat.Diffusion(m, fe, []int{seed},
//	    heat.WithMultiplier(1.0),
//	    heat.WithSolver(heat.SolverCholesky))
//
// Errors follow the package sentinel convention (errors.Is); they split into
// shape mismatches (ErrShapeMismatch, ErrVertexOutOfRange), configuration
// (ErrCholeskyUnavailable), factorization failures (ErrFactorization) and
// domain violations (non-positive times or multiplier, degenerate mesh,
// empty seed set, unsorted eigenvalues).
package heat
