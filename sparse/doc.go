// SPDX-License-Identifier: MIT
// Package sparse provides compressed sparse row (CSR) matrices and the two
// factorization kernels used by the heat-diffusion solve: a sparse Cholesky
// decomposition and a sparse LU decomposition with partial pivoting.
//
// 🚀 What is sparse?
//
//	A small, dependency-free sparse linear-algebra layer tuned for
//	finite-element systems:
//	  • COO (triplet) builder — natural target for element assembly loops
//	  • CSR storage — ascending column indices, O(nnz) matrix–vector product
//	  • A + α·B with pattern union — builds backward-Euler matrices M + t·K
//	  • Cholesky — up-looking, for symmetric positive-definite systems
//	  • LU — row elimination with partial pivoting, for general systems
//
// ✨ Design:
//   - Fail-fast validation: every public entry point checks shapes and
//     indices before touching data and returns a package sentinel error.
//   - Deterministic behavior: no global state, stable entry ordering.
//   - Factorizations never mutate their input matrix.
//
// ⚙️ Capability gating:
//
//	The Cholesky kernel mirrors an optional backend: building with the
//	`lvlheat_nocholmod` tag compiles it out, and CholeskyAvailable reports
//	the capability at run time so callers can fail before doing any work.
//
// Complexity:
//
//   - MulVec: O(nnz)
//   - Cholesky/LU: between O(nnz) and O(n³) depending on fill; no
//     fill-reducing ordering is applied (intentional simplicity trade-off —
//     the meshes these systems come from are small relative to their nnz).
package sparse
