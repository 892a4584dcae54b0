//go:build !lvlheat_nocholmod

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheat/sparse"
)

// ExampleCSR_AddScaled composes a backward-Euler matrix H = M + t·K from a
// diagonal mass and a tridiagonal stiffness, then solves H·x = b.
func ExampleCSR_AddScaled() {
	massC, _ := sparse.NewCOO(3, 3)
	for i := 0; i < 3; i++ {
		_ = massC.Append(i, i, 1)
	}
	stiffC, _ := sparse.NewCOO(3, 3)
	for i := 0; i < 3; i++ {
		_ = stiffC.Append(i, i, 2)
		if i > 0 {
			_ = stiffC.Append(i, i-1, -1)
			_ = stiffC.Append(i-1, i, -1)
		}
	}

	h, err := massC.ToCSR().AddScaled(stiffC.ToCSR(), 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}

	var ch sparse.Cholesky
	if err = ch.Factorize(h); err != nil {
		fmt.Println(err)
		return
	}
	x, err := ch.SolveVec([]float64{1, 0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	// H = [[2 -0.5 0] [-0.5 2 -0.5] [0 -0.5 2]] ⇒ x = [15 4 1]/28.
	fmt.Printf("%.4f %.4f %.4f\n", x[0], x[1], x[2])
	// Output:
	// 0.5357 0.1429 0.0357
}
