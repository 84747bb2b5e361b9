package ialm

import (
	"math"
	"os"

	"github.com/katalvlaran/rpca/svd"
	"gonum.org/v1/gonum/mat"
)

// Decompose — Robust PCA by the Inexact Augmented Lagrange Multiplier method.
//
// Description:
//
//	Splits a into L (low rank) + S (sparse) by alternating the ℓ1 proximal
//	update of S, the nuclear-norm proximal update of L with adaptive rank
//	prediction, and the multiplier/penalty schedule, until the relative
//	Frobenius residual reaches opts.Tol or opts.MaxIter iterations ran.
//
// Algorithm Outline:
//  1. Validate inputs; resolve λ (auto → max(m,n)^(−1/2)) and the backend.
//  2. Norms of A: σ₁ (method-dependent), ‖A‖∞/λ, ‖A‖F.
//     Z ← A/max(σ₁, ‖A‖∞/λ),  μ ← γ/σ₁,  μ̄ ← 10⁷·μ,  k ← 1,  L = S = 0.
//  3. Iterate while err > tol and the budget allows:
//     a. S ← soft-threshold(A − L + Z/μ, λ/μ)
//     b. (U, d, V) ← decompose(A − S + Z/μ) at target rank k
//     c. svp ← #{dᵢ > 1/μ};  k ← min(svp+1, n) if svp ≤ k,
//     else min(svp+round(0.05·n), n)
//     d. L ← U[:,:svp]·diag(d[:svp]−1/μ)·V[:,:svp]ᵀ  (svp, not the grown k)
//     e. Z ← Z + μ·(A − L − S);  err ← ‖A − L − S‖F/‖A‖F;  μ ← min(ρμ, μ̄)
//
// opts may be nil for DefaultOptions. a is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonFinite, ErrBadLambda, ErrBadTolerance,
//     ErrBadMaxIter, ErrBadSketch — invalid input, nothing was computed.
//   - *FactorizeError — the SVD backend failed; carries the iteration index.
//
// Exhausting MaxIter is not an error: the partial decomposition comes back
// with exactly MaxIter recorded errors for the caller to judge.
//
// Complexity:
//
//	Time   = O(maxiter · cost(SVD)), Memory = O(m·n).
func Decompose(a *mat.Dense, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if a == nil {
		return nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return nil, ErrNilMatrix
	}
	if !finite(a) {
		return nil, ErrNonFinite
	}
	// NaN fails every comparison, so the domain checks must not rely on a
	// single rejected-range test.
	if o.Lambda < 0 || math.IsNaN(o.Lambda) || math.IsInf(o.Lambda, 0) {
		return nil, ErrBadLambda
	}
	if !(o.Tol > 0) || math.IsInf(o.Tol, 0) {
		return nil, ErrBadTolerance
	}
	if o.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}
	if o.Oversample < 0 || o.PowerIters < 0 {
		return nil, ErrBadSketch
	}

	lambda := o.Lambda
	if lambda == 0 {
		lambda = 1 / math.Sqrt(float64(max(m, n)))
	}

	method := newDecomposer(&o)

	sc, err := estimateScaling(a, lambda, method)
	if err != nil {
		return nil, &FactorizeError{Iter: 0, Err: err}
	}

	// Zero-matrix guards: a zero A has σ₁ = dual = ‖A‖F = 0 and converges
	// on the first iteration; the substitutes keep the schedule finite and
	// the error metric well-defined without changing any nonzero run.
	spectral, frob := sc.spectral, sc.frob
	if spectral == 0 {
		spectral = 1
	}
	if frob == 0 {
		frob = 1
	}

	z := mat.NewDense(m, n, nil)
	if sc.dual > 0 {
		z.Scale(1/sc.dual, a)
	}

	mu := gamma / spectral
	muBar := mu * muCapFactor

	var (
		l = mat.NewDense(m, n, nil) // low-rank accumulator
		s = mat.NewDense(m, n, nil) // sparse accumulator
		t = mat.NewDense(m, n, nil) // scratch: thresholding input, Z update
		r = mat.NewDense(m, n, nil) // scratch: decomposition residual

		k      = 1
		relErr = math.Inf(1)
		hist   = make([]float64, 0, o.MaxIter)
	)

	sink := o.Sink
	if o.Trace && sink == nil {
		sink = WriteProgress(os.Stdout)
	}

	for iter := 1; iter <= o.MaxIter && relErr > o.Tol; iter++ {
		// S-update: shrink the penalized residual A − L + Z/μ by λ/μ.
		t.Scale(1/mu, z)
		t.Add(t, a)
		t.Sub(t, l)
		softThreshold(s, t, lambda/mu)

		// Residual handed to the decomposition: A − S + Z/μ.
		r.Scale(1/mu, z)
		r.Add(r, a)
		r.Sub(r, s)

		u, d, v, fErr := method.factor(r, k)
		if fErr != nil {
			return nil, &FactorizeError{Iter: iter, Err: fErr}
		}

		// Predicted rank: singular values that survive the 1/μ shrinkage.
		svp := 0
		for _, dv := range d {
			if dv > 1/mu {
				svp++
			}
		}

		// Search width for the next factorization: grow by one while the
		// prediction fits the current guess, jump by 5% of the column
		// count once it overshoots.
		if svp <= k {
			k = min(svp+1, n)
		} else {
			k = min(svp+int(math.Round(rankGrowth*float64(n))), n)
		}

		// L-update slices with svp, not the grown k: svp counts the
		// triplets significant this iteration, k only sizes the next call.
		shrinkSpectrum(l, u, d, v, svp, 1/mu)

		// Multiplier and error bookkeeping on the true residual A − L − S.
		r.Sub(a, l)
		r.Sub(r, s)
		t.Scale(mu, r)
		z.Add(z, t)

		relErr = mat.Norm(r, 2) / frob
		hist = append(hist, relErr)

		if sink != nil && o.Trace {
			sink(Progress{Iter: iter, Svp: svp, Rank: k, Err: relErr, Mu: mu})
		}

		mu = math.Min(mu*rho, muBar)
	}

	return &Result{L: l, S: s, Rank: k, Errors: hist}, nil
}

// newDecomposer resolves the decomposition strategy for one call: the
// explicit backend when set, otherwise exact gonum or the seeded randomized
// range finder.
func newDecomposer(o *Options) decomposer {
	f := o.SVD
	if f == nil {
		if o.Randomized {
			f = svd.Randomized{Seed: o.Seed}
		} else {
			f = svd.Gonum{}
		}
	}

	if o.Randomized {
		return randomizedDecomposer{f: f, oversample: o.Oversample, powerIters: o.PowerIters}
	}

	return exactDecomposer{f: f}
}
