package ialm_test

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/rpca/ialm"
	"gonum.org/v1/gonum/mat"
)

// ExampleDecompose separates a smooth rank-1 signal from a single gross
// outlier: the low-rank component keeps the structure, the sparse component
// isolates the corrupted cell.
//
// Scenario:
//
//	An 8×6 "coverage" matrix — every row is a scaled copy of the same
//	profile — with one cell pushed far off the surface. RPCA must place the
//	push in S and leave L rank 1.
func ExampleDecompose() {
	const rows, cols = 8, 6

	profile := []float64{2, 4, 6, 8, 10, 12}
	a := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		scale := 1 + 0.25*float64(i)
		for j := 0; j < cols; j++ {
			a.Set(i, j, scale*profile[j])
		}
	}
	a.Set(3, 4, a.At(3, 4)+50) // the outlier

	opts := ialm.DefaultOptions()
	res, err := ialm.Decompose(a, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Locate the dominant sparse entry.
	var bestI, bestJ int
	var best float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := math.Abs(res.S.At(i, j)); v > best {
				best, bestI, bestJ = v, i, j
			}
		}
	}

	fmt.Printf("converged=%v\n", res.Errors[len(res.Errors)-1] <= opts.Tol)
	fmt.Printf("outlier=(%d,%d)\n", bestI, bestJ)
	fmt.Printf("magnitude≈50=%v\n", math.Abs(res.S.At(bestI, bestJ)-50) < 1)
	// Output:
	// converged=true
	// outlier=(3,4)
	// magnitude≈50=true
}

// ExampleWriteProgress shows the per-iteration trace line.
func ExampleWriteProgress() {
	sink := ialm.WriteProgress(os.Stdout)
	sink(ialm.Progress{Iter: 1, Svp: 2, Rank: 3, Err: 0.125, Mu: 2})
	// Output:
	// iter=1 svp=2 rank=3 err=1.250000e-01 mu=2.000000e+00
}
