package fem

import "math"

// Aniso is a diagonal conductivity tensor D = diag(X, Y, Z) applied to the
// stiffness integrand (D∇φi)·∇φj. The identity tensor is the isotropic
// Laplace–Beltrami operator.
type Aniso struct {
	X, Y, Z float64
}

// Isotropic is the identity conductivity tensor.
var Isotropic = Aniso{X: 1, Y: 1, Z: 1}

// valid reports whether every component is positive and finite.
func (a Aniso) valid() bool {
	for _, v := range [3]float64{a.X, a.Y, a.Z} {
		if !(v > 0) || math.IsInf(v, 1) {
			return false
		}
	}

	return true
}

// Option configures an Assembler at construction time.
type Option func(*Assembler)

// WithAnisotropy sets the conductivity tensor used by stiffness assembly.
// Component validity is checked by the constructor (ErrBadAnisotropy).
func WithAnisotropy(a Aniso) Option {
	return func(asm *Assembler) { asm.aniso = a }
}

// DegenerateEps is the squared-area / squared-volume floor below which an
// element is rejected as degenerate.
const DegenerateEps = 1e-30
