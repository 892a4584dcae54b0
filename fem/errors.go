package fem

import "errors"

var (
	// ErrNilMesh indicates a nil mesh was passed to a constructor.
	ErrNilMesh = errors.New("fem: nil mesh")

	// ErrDegenerateElement indicates an element with (near-)zero area or
	// volume; its hat-function gradients are undefined.
	ErrDegenerateElement = errors.New("fem: degenerate element")

	// ErrBadAnisotropy indicates a non-positive or non-finite conductivity
	// component.
	ErrBadAnisotropy = errors.New("fem: anisotropy components must be positive and finite")
)
