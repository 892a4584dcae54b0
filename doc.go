// Package lvlheat computes heat-kernel quantities and heat diffusion on
// discretized manifolds — triangulated surfaces and tetrahedral volumes —
// from a truncated Laplace eigen-decomposition.
//
// 🚀 What is lvlheat?
//
//	A compact numeric toolkit for diffusion-based geometry processing:
//		• Spectral evaluators: heat-kernel diagonal & fixed-vertex columns
//		  from caller-supplied eigenpairs
//		• Backward-Euler diffusion: one sparse solve with the time step
//		  derived from mesh resolution (t = m·h²)
//		• P1 finite elements: lumped/consistent mass & anisotropic stiffness
//		• Sparse kernels: CSR storage, Cholesky & pivoted-LU factorizations
//
// ✨ Why choose lvlheat?
//
//   - Predictable numerics – explicit validation, sentinel errors, no
//     silent algorithm substitution
//   - No hidden state – pure evaluators, fresh outputs, safe concurrent reads
//   - Pluggable solves – LU by default, Cholesky when compiled in
//     (the lvlheat_nocholmod build tag turns it off; availability is
//     queryable at run time)
//
// Everything is organized under four subpackages:
//
//	heat/   — kernel evaluators & the diffusion solve (the public core)
//	fem/    — mass/stiffness assembly over tria & tet meshes
//	mesh/   — minimal geometry carriers (vertex count, average edge length)
//	sparse/ — CSR matrices and the two factorization strategies
//
// Quick ASCII example:
//
//	    3───2
//	    │ ╱ │        two triangles on a unit square; seed heat at 0,
//	    0───1        diffuse for t = avg_edge_length².
//
//	go get github.com/katalvlaran/lvlheat/heat
package lvlheat
