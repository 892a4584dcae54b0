package fem

import (
	"math"

	"github.com/katalvlaran/lvlheat/mesh"
	"github.com/katalvlaran/lvlheat/sparse"
)

// Assembler builds the mass and stiffness operators for one mesh.
// Construct with NewTria or NewTet; an Assembler is immutable and safe for
// concurrent Assemble calls.
type Assembler struct {
	tria  *mesh.TriaMesh
	tet   *mesh.TetMesh
	aniso Aniso
}

// NewTria returns an assembler over a triangulated surface.
func NewTria(m *mesh.TriaMesh, opts ...Option) (*Assembler, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	return newAssembler(&Assembler{tria: m}, opts)
}

// NewTet returns an assembler over a tetrahedral volume.
func NewTet(m *mesh.TetMesh, opts ...Option) (*Assembler, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	return newAssembler(&Assembler{tet: m}, opts)
}

func newAssembler(asm *Assembler, opts []Option) (*Assembler, error) {
	asm.aniso = Isotropic
	for _, opt := range opts {
		opt(asm)
	}
	if !asm.aniso.valid() {
		return nil, ErrBadAnisotropy
	}

	return asm, nil
}

// Assemble produces the mass and stiffness matrices, both symmetric V×V CSR.
// lump selects the diagonal (lumped) mass approximation; false yields the
// consistent mass matrix.
//
// Per element the routine computes the P1 hat-function gradients, stamps
// vol·(D·gᵢ)·gⱼ into the stiffness and the matching mass block, and lets the
// COO builder accumulate overlaps at shared vertices.
//
// Errors: ErrDegenerateElement on a (near-)zero-area or zero-volume element.
func (asm *Assembler) Assemble(lump bool) (mass, stiffness *sparse.CSR, err error) {
	if asm.tria != nil {
		return asm.assembleTria(lump)
	}

	return asm.assembleTet(lump)
}

func (asm *Assembler) assembleTria(lump bool) (*sparse.CSR, *sparse.CSR, error) {
	nv := asm.tria.VertexCount()
	massC, _ := sparse.NewCOO(nv, nv)
	stiffC, _ := sparse.NewCOO(nv, nv)

	for _, tr := range asm.tria.Trias {
		p0 := asm.tria.Points[tr[0]]
		p1 := asm.tria.Points[tr[1]]
		p2 := asm.tria.Points[tr[2]]

		// Counterclockwise opposite edges: E_i faces vertex i.
		e := [3][3]float64{sub(p2, p1), sub(p0, p2), sub(p1, p0)}
		n := cross(e[2], neg(e[1]))
		twoA := norm(n)
		area := twoA / 2
		if area*area < DegenerateEps {
			return nil, nil, ErrDegenerateElement
		}
		nHat := scale(n, 1/twoA)

		// P1 hat gradients: ∇φ_i = n̂ × E_i / (2A).
		var g [3][3]float64
		for i := 0; i < 3; i++ {
			g[i] = scale(cross(nHat, e[i]), 1/twoA)
		}

		if err := asm.stamp(stiffC, massC, tr[:], g[:], area, lump); err != nil {
			return nil, nil, err
		}
	}

	return massC.ToCSR(), stiffC.ToCSR(), nil
}

func (asm *Assembler) assembleTet(lump bool) (*sparse.CSR, *sparse.CSR, error) {
	nv := asm.tet.VertexCount()
	massC, _ := sparse.NewCOO(nv, nv)
	stiffC, _ := sparse.NewCOO(nv, nv)

	for _, te := range asm.tet.Tets {
		p0 := asm.tet.Points[te[0]]
		p1 := asm.tet.Points[te[1]]
		p2 := asm.tet.Points[te[2]]
		p3 := asm.tet.Points[te[3]]

		// Signed 6·volume; its sign cancels in every gradient product.
		v6 := dot(sub(p1, p0), cross(sub(p2, p0), sub(p3, p0)))
		vol := math.Abs(v6) / 6
		if vol*vol < DegenerateEps {
			return nil, nil, ErrDegenerateElement
		}

		// ∇φ_i = c_i / (6V): scaled inward normals of the opposite faces.
		c := [4][3]float64{
			cross(sub(p3, p1), sub(p2, p1)),
			cross(sub(p2, p0), sub(p3, p0)),
			cross(sub(p3, p0), sub(p1, p0)),
			cross(sub(p1, p0), sub(p2, p0)),
		}
		var g [4][3]float64
		for i := 0; i < 4; i++ {
			g[i] = scale(c[i], 1/v6)
		}

		if err := asm.stamp(stiffC, massC, te[:], g[:], vol, lump); err != nil {
			return nil, nil, err
		}
	}

	return massC.ToCSR(), stiffC.ToCSR(), nil
}

// stamp writes one element's local stiffness and mass blocks into the
// builders. verts has 3 (tria) or 4 (tet) entries; vol is the element
// area/volume; g carries one hat gradient per vertex.
func (asm *Assembler) stamp(stiffC, massC *sparse.COO, verts []int, g [][3]float64, vol float64, lump bool) error {
	k := len(verts)
	d := asm.aniso

	for i := 0; i < k; i++ {
		dg := [3]float64{d.X * g[i][0], d.Y * g[i][1], d.Z * g[i][2]}
		for j := 0; j < k; j++ {
			if err := stiffC.Append(verts[i], verts[j], vol*dot(dg, g[j])); err != nil {
				return err
			}
		}
	}

	if lump {
		w := vol / float64(k)
		for i := 0; i < k; i++ {
			if err := massC.Append(verts[i], verts[i], w); err != nil {
				return err
			}
		}

		return nil
	}

	// Consistent P1 mass: vol·(1+δij)/(k·(k+1)) — vol/12 blocks on trias,
	// vol/20 on tets.
	w := vol / float64(k*(k+1))
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := w
			if i == j {
				v = 2 * w
			}
			if err := massC.Append(verts[i], verts[j], v); err != nil {
				return err
			}
		}
	}

	return nil
}

func sub(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func neg(a [3]float64) [3]float64 { return [3]float64{-a[0], -a[1], -a[2]} }

func scale(a [3]float64, s float64) [3]float64 { return [3]float64{s * a[0], s * a[1], s * a[2]} }

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func norm(a [3]float64) float64 { return math.Sqrt(dot(a, a)) }

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
