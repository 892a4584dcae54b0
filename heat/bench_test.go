package heat_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlheat/heat"
)

// syntheticEigenpairs fills a deterministic V×N eigenpair set with ascending
// eigenvalues; the values are arbitrary but finite and well scaled.
func syntheticEigenpairs(v, n int) (*mat.Dense, []float64) {
	evecs := mat.NewDense(v, n, nil)
	for p := 0; p < v; p++ {
		for j := 0; j < n; j++ {
			evecs.Set(p, j, math.Sin(float64(p*j+1))/math.Sqrt(float64(v)))
		}
	}
	evals := make([]float64, n)
	for j := range evals {
		evals[j] = float64(j) * 0.1
	}

	return evecs, evals
}

func BenchmarkDiagonal(b *testing.B) {
	evecs, evals := syntheticEigenpairs(2000, 64)
	times := []float64{0.01, 0.1, 1, 10}
	x := make([]int, 500)
	for i := range x {
		x[i] = i * 4
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := heat.Diagonal(times, x, evecs, evals, 64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKernel(b *testing.B) {
	evecs, evals := syntheticEigenpairs(2000, 64)
	times := []float64{0.01, 0.1, 1, 10}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := heat.Kernel(times, 42, evecs, evals, 64); err != nil {
			b.Fatal(err)
		}
	}
}
