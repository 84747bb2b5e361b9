package ialm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// scaling bundles the three norms taken once before the loop starts.
type scaling struct {
	// spectral is σ₁(A), exact or rank-1 randomized per the configured
	// method; it seeds the penalty μ₀ = γ/σ₁.
	spectral float64

	// dual is max(σ₁(A), ‖A‖∞/λ), the dual norm scaling the initial
	// multiplier Z₀ = A/dual.
	dual float64

	// frob is ‖A‖F, the fixed denominator of the relative error metric.
	frob float64
}

// estimateScaling computes the initialization norms of a. It does not
// mutate a; the only side effect is one decomposition call on the backend.
func estimateScaling(a *mat.Dense, lambda float64, method decomposer) (scaling, error) {
	spectral, err := method.topValue(a)
	if err != nil {
		return scaling{}, err
	}

	return scaling{
		spectral: spectral,
		dual:     math.Max(spectral, mat.Norm(a, math.Inf(1))/lambda),
		frob:     mat.Norm(a, 2),
	}, nil
}

// finite reports whether every entry of a is a finite number.
func finite(a *mat.Dense) bool {
	raw := a.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		for _, v := range raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
