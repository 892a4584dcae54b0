package heat_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlheat/fem"
	"github.com/katalvlaran/lvlheat/heat"
	"github.com/katalvlaran/lvlheat/mesh"
)

// ExampleDiagonal evaluates the kernel diagonal for two vertices carrying one
// eigenmode each: the zero mode keeps its heat, the λ=2 mode decays to e⁻¹.
func ExampleDiagonal() {
	evecs := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
	evals := []float64{0, 2}

	h, err := heat.Diagonal([]float64{0.5}, []int{0, 1}, evecs, evals, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.4f\n%.4f\n", h.At(0, 0), h.At(1, 0))
	// Output:
	// 1.0000
	// 0.3679
}

// ExampleDiffusion spreads heat from one corner of a two-triangle square and
// confirms the seed keeps the most heat.
func ExampleDiffusion() {
	m, err := mesh.NewTriaMesh(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[][3]int{{0, 1, 2}, {0, 2, 3}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fe, err := fem.NewTria(m)
	if err != nil {
		fmt.Println(err)
		return
	}

	field, err := heat.Diffusion(m, fe, []int{0})
	if err != nil {
		fmt.Println(err)
		return
	}

	hottest := 0
	for i := 1; i < field.Len(); i++ {
		if field.AtVec(i) > field.AtVec(hottest) {
			hottest = i
		}
	}
	fmt.Println(field.Len(), hottest)
	// Output:
	// 4 0
}
