// Package ialm: options, defaults and algorithm constants.
package ialm

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rpca/svd"
	"gonum.org/v1/gonum/mat"
)

// Defaults for DefaultOptions. MaxIter and Tol follow the usual IALM
// stopping setup; Oversample and PowerIters are the customary randomized
// range-finding knobs.
const (
	// DefaultMaxIter caps the iteration budget.
	DefaultMaxIter = 500

	// DefaultTol is the relative Frobenius error at which the loop stops.
	DefaultTol = 1e-7

	// DefaultOversample widens the randomized sketch beyond the target rank.
	DefaultOversample = 10

	// DefaultPowerIters sharpens the randomized sketch toward the dominant
	// subspace.
	DefaultPowerIters = 1
)

// Fixed schedule constants of the IALM iteration (Lin, Chen & Ma 2010).
const (
	// rho grows the penalty μ every iteration.
	rho = 1.5

	// gamma scales the initial penalty: μ₀ = γ/σ₁(A).
	gamma = 1.25

	// muCapFactor bounds the penalty: μ ≤ muCapFactor·μ₀.
	muCapFactor = 1e7

	// rankGrowth is the aggressive target-rank step, as a fraction of the
	// column count, taken when the predicted rank overshoots the target.
	rankGrowth = 0.05

	// extraTriplets widens every randomized factorization beyond the
	// current target rank.
	extraTriplets = 10

	// exactFallbackDiv gates the randomized path: once the target rank
	// exceeds min(m,n)/exactFallbackDiv, truncation no longer pays off and
	// that iteration uses the exact decomposition.
	exactFallbackDiv = 5
)

// Progress describes one completed IALM iteration.
type Progress struct {
	// Iter is the 1-based iteration index.
	Iter int

	// Svp is the predicted rank: singular values above 1/μ this iteration.
	Svp int

	// Rank is the target rank for the next factorization, after growth.
	Rank int

	// Err is the relative Frobenius error ‖A−L−S‖F/‖A‖F after this
	// iteration's updates.
	Err float64

	// Mu is the penalty value the iteration ran with, before growth.
	Mu float64
}

// ProgressFunc receives one event per iteration while tracing is enabled.
type ProgressFunc func(Progress)

// WriteProgress adapts an io.Writer into a ProgressFunc emitting one
// human-readable line per iteration.
func WriteProgress(w io.Writer) ProgressFunc {
	return func(p Progress) {
		fmt.Fprintf(w, "iter=%d svp=%d rank=%d err=%.6e mu=%.6e\n",
			p.Iter, p.Svp, p.Rank, p.Err, p.Mu)
	}
}

// Options configures Decompose.
//
// Fields:
//   - Lambda     — sparsity weight λ. Zero selects the classical default
//     max(m,n)^(−1/2); negative values are rejected.
//   - MaxIter    — iteration budget, ≥ 1.
//   - Tol        — relative Frobenius error target, > 0.
//   - Oversample — extra sketch columns for the randomized backend, ≥ 0.
//   - PowerIters — power iterations for the randomized backend, ≥ 0.
//   - Randomized — use randomized truncated SVD while the target rank stays
//     below min(m,n)/5; exact SVD otherwise and always on fallback.
//   - Trace      — emit one Progress event per iteration.
//   - Sink       — receiver for Trace events; nil writes lines to os.Stdout.
//   - SVD        — decomposition backend override; nil picks svd.Gonum or
//     svd.Randomized{Seed: Seed} according to Randomized.
//   - Seed       — seed for the default randomized backend.
type Options struct {
	Lambda     float64
	MaxIter    int
	Tol        float64
	Oversample int
	PowerIters int
	Randomized bool
	Trace      bool
	Sink       ProgressFunc
	SVD        svd.Factorizer
	Seed       uint64
}

// DefaultOptions returns the canonical configuration: auto λ, exact SVD,
// tol 1e-7, 500 iterations.
func DefaultOptions() Options {
	return Options{
		MaxIter:    DefaultMaxIter,
		Tol:        DefaultTol,
		Oversample: DefaultOversample,
		PowerIters: DefaultPowerIters,
	}
}

// Result carries the decomposition outcome.
//
// A run that reached Tol has len(Errors) < MaxIter (or a final error ≤ Tol);
// a run that exhausted the budget has exactly MaxIter entries. Both shapes
// are the same — non-convergence is a normal outcome, not an error.
type Result struct {
	// L is the low-rank component, numerical rank ≤ Rank.
	L *mat.Dense

	// S is the sparse component.
	S *mat.Dense

	// Rank is the final target rank k.
	Rank int

	// Errors records the relative Frobenius error of every iteration, in
	// order.
	Errors []float64
}
