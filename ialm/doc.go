// Package ialm decomposes a real matrix A into a low-rank component L and a
// sparse component S (A ≈ L + S) with the Inexact Augmented Lagrange
// Multiplier method — the standard convex-relaxation solver for Robust PCA.
//
// 🚀 What is IALM?
//
//	IALM alternates two proximal updates against a running Lagrange
//	multiplier Z and a growing penalty μ:
//	  • S ← soft-threshold(A − L + Z/μ, λ/μ)       — ℓ1 proximal step
//	  • L ← shrink singular values of A − S + Z/μ  — nuclear-norm proximal step
//	  • Z ← Z + μ·(A − L − S),  μ ← min(ρ·μ, μ̄)
//	until the relative Frobenius residual ‖A − L − S‖F/‖A‖F drops to the
//	tolerance or the iteration budget runs out.
//
// ✨ Key features:
//   - adaptive target rank: each iteration counts the singular values above
//     1/μ (the predicted rank svp) and grows the next search width from it
//   - exact or randomized SVD, chosen per iteration — randomized truncation
//     is skipped once the target rank outgrows min(m,n)/5
//   - injectable decomposition backend and progress sink
//   - λ defaults to max(m,n)^(−1/2), the classical RPCA weight
//
// ⚙️ Usage:
//
//	opts := ialm.DefaultOptions()
//	opts.Randomized = true
//	opts.Seed = 7
//
//	res, err := ialm.Decompose(a, &opts)
//	if err != nil {
//	  // ErrNonFinite, ErrBadTolerance, ... or a *FactorizeError from the backend
//	}
//	converged := res.Errors[len(res.Errors)-1] <= opts.Tol
//
// Non-convergence is not an error: a run that exhausts MaxIter returns the
// partial L and S with exactly MaxIter recorded errors, and the caller
// decides whether to accept, reject, or rerun with other parameters.
//
// Performance:
//
//   - exact path:       O(maxiter · m·n·min(m,n)) time, O(m·n) memory
//   - randomized path:  O(maxiter · m·n·(k+p)) time while k stays small
//
// The loop is single-threaded; independent calls are safe to run
// concurrently since every call owns its matrices and scalar state.
package ialm
