package ialm

import (
	"github.com/katalvlaran/rpca/svd"
	"gonum.org/v1/gonum/mat"
)

// decomposer is the per-iteration decomposition strategy. Two
// implementations exist — exact and randomized — picked once per Decompose
// call; the randomized one still falls back to the exact path iteration by
// iteration, because the target rank k moves between iterations.
type decomposer interface {
	// factor returns singular triplets of r sufficient to cover the current
	// target rank k, values descending.
	factor(r *mat.Dense, k int) (u *mat.Dense, d []float64, v *mat.Dense, err error)

	// topValue estimates the largest singular value of a, used once for
	// the initial scaling constants.
	topValue(a *mat.Dense) (float64, error)
}

// exactDecomposer always takes the full decomposition.
type exactDecomposer struct {
	f svd.Factorizer
}

func (e exactDecomposer) factor(r *mat.Dense, _ int) (*mat.Dense, []float64, *mat.Dense, error) {
	return e.f.Full(r)
}

func (e exactDecomposer) topValue(a *mat.Dense) (float64, error) {
	_, d, _, err := e.f.Full(a)
	if err != nil {
		return 0, err
	}
	if len(d) == 0 {
		return 0, nil
	}

	return d[0], nil
}

// randomizedDecomposer asks the backend for k+extraTriplets triplets, unless
// the target rank has outgrown min(m,n)/exactFallbackDiv — at that width a
// sketch costs about as much as the matrix itself, so the iteration falls
// back to the full decomposition.
type randomizedDecomposer struct {
	f          svd.Factorizer
	oversample int
	powerIters int
}

func (r randomizedDecomposer) factor(res *mat.Dense, k int) (*mat.Dense, []float64, *mat.Dense, error) {
	m, n := res.Dims()
	if k > min(m, n)/exactFallbackDiv {
		return r.f.Full(res)
	}

	return r.f.Truncated(res, k+extraTriplets, r.oversample, r.powerIters)
}

func (r randomizedDecomposer) topValue(a *mat.Dense) (float64, error) {
	_, d, _, err := r.f.Truncated(a, 1, r.oversample, r.powerIters)
	if err != nil {
		return 0, err
	}
	if len(d) == 0 {
		return 0, nil
	}

	return d[0], nil
}
