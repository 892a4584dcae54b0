package heat

import "github.com/katalvlaran/lvlheat/sparse"

// Geometry is the surface Diffusion needs from a mesh: the vertex count and
// the average element-edge length the time step is derived from.
// Both mesh.TriaMesh and mesh.TetMesh satisfy it.
type Geometry interface {
	VertexCount() int
	AvgEdgeLength() float64
}

// Assembler is the external finite-element provider ("Solver" in FEM
// terminology): it returns the sparse symmetric V×V mass and stiffness
// operators for its geometry. lump requests the diagonal mass approximation,
// which is what Diffusion always asks for. Anisotropy configuration rides on
// the assembler itself (see fem.WithAnisotropy).
type Assembler interface {
	Assemble(lump bool) (mass, stiffness *sparse.CSR, err error)
}

// Solver selects the linear-system strategy for the backward-Euler solve.
// Selection happens once, before solving; the variants are interchangeable
// black boxes returning numerically close (not bit-identical) results on
// well-conditioned systems.
type Solver int

const (
	// SolverLU (default) uses sparse LU with partial pivoting. Tolerant of
	// symmetric positive-semidefinite systems in practice.
	SolverLU Solver = iota

	// SolverCholesky uses the sparse Cholesky factorization. Requires the
	// capability to be compiled in (sparse.CholeskyAvailable) and a
	// positive-definite system.
	SolverCholesky
)

// String names the strategy for diagnostics.
func (s Solver) String() string {
	switch s {
	case SolverLU:
		return "lu"
	case SolverCholesky:
		return "cholesky"
	default:
		return "unknown"
	}
}

// Event is the structured diagnostic emitted once per Diffusion call through
// the WithDiagnostics hook: which strategy ran, the matrix storage format,
// and the assembled system's size. It replaces ad-hoc printing; nothing is
// emitted unless a hook is installed.
type Event struct {
	Solver string  // strategy name ("lu", "cholesky")
	Format string  // sparse storage format of the system matrix ("csr")
	Dim    int     // number of vertices V
	NNZ    int     // stored entries of the backward-Euler matrix H
	Time   float64 // derived diffusion time t = m·h²
}

// Option configures a single Diffusion call.
type Option func(*options)

// DefaultMultiplier is the diffusion-time multiplier used when WithMultiplier
// is not supplied: t = 1·h².
const DefaultMultiplier = 1.0

type options struct {
	multiplier float64
	solver     Solver
	diag       func(Event)
}

func defaultOptions() options {
	return options{multiplier: DefaultMultiplier, solver: SolverLU}
}

// WithMultiplier sets the diffusion-time multiplier m in t = m·h².
// Values m <= 0 surface as ErrNonPositiveMultiplier at call entry.
func WithMultiplier(m float64) Option {
	return func(o *options) { o.multiplier = m }
}

// WithSolver selects the linear-system strategy (default SolverLU).
func WithSolver(s Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithDiagnostics installs a hook receiving one Event per Diffusion call,
// after a successful solve. A nil hook disables diagnostics (the default).
func WithDiagnostics(hook func(Event)) Option {
	return func(o *options) { o.diag = hook }
}
