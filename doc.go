// Package rpca splits a real matrix into a low-rank part and a sparse part —
// Robust Principal Component Analysis solved by the Inexact Augmented
// Lagrange Multiplier (IALM) method, with exact or randomized SVD backends.
//
// 🚀 What is rpca?
//
//	Given an (m×n) measurement A — say a coverage signal arranged as
//	samples × bins — rpca finds L (low rank, the smooth structured signal)
//	and S (sparse, the localized outliers) with A ≈ L + S:
//	  • L via iterative singular value shrinkage with adaptive rank prediction
//	  • S via entrywise soft-thresholding (the ℓ1 proximal operator)
//	  • a Lagrange multiplier and a growing penalty μ driving convergence
//
// ✨ Why choose rpca?
//
//   - Small API – one entry point, one options struct, one result struct
//   - Deterministic – fixed seeds reproduce runs bit for bit
//   - Pluggable SVD – exact (gonum) or randomized range-finding, switched
//     per iteration by an adaptive rank heuristic
//   - Observable – an injectable progress sink reports every iteration
//
// Everything is organized under two subpackages:
//
//	ialm/ — the IALM controller: options, soft-thresholding, norm
//	        estimation, rank-adaptive method selection, the iteration loop
//	svd/  — the decomposition primitive: exact thin SVD and a Gaussian
//	        sketch + power-iteration randomized SVD
//
// Quick sketch:
//
//	res, err := ialm.Decompose(a, nil) // defaults: auto λ, tol 1e-7
//	if err != nil { ... }
//	// res.L  — low-rank component
//	// res.S  — sparse component
//	// res.Errors — relative Frobenius error per iteration
//
// Dive into ialm/doc.go for the algorithm walkthrough and the tuning knobs.
//
//	go get github.com/katalvlaran/rpca/ialm
package rpca
