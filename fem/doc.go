// Package fem assembles the P1 finite-element operators — mass and stiffness
// matrices — over triangulated surfaces and tetrahedral volumes.
//
// 🚀 What is fem?
//
//	The "Solver" collaborator of the heat core: given a mesh, it produces
//	the two sparse symmetric V×V operators the backward-Euler system is
//	composed from.
//	  • stiffness: K[i,j] = Σ_elem vol·(D∇φi)·∇φj with linear (hat)
//	    element functions and an optional diagonal conductivity tensor D
//	  • mass, lumped: diagonal, vol/3 (tria) or vol/4 (tet) per vertex
//	  • mass, consistent: the standard vol/12·(1+δij) / vol/20·(1+δij)
//	    local blocks
//
// ✨ Properties (and the tests that pin them):
//   - stiffness rows sum to zero — hat functions partition unity
//   - lumped mass trace equals total surface area / volume
//   - both operators are symmetric with identical element ordering
//
// ⚙️ Anisotropy:
//
//	WithAnisotropy(Aniso{X, Y, Z}) scales the gradient integrand per world
//	axis, weighting diffusion directions non-uniformly. The heat core never
//	inspects this — it rides entirely on the assembler, which is the
//	pass-through contract of the diffusion pipeline.
package fem
