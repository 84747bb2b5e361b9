// Package svd supplies the singular value decomposition primitive consumed
// by the IALM controller, behind one small interface with two backends.
//
// 🚀 What lives here?
//
//   - Factorizer — the contract: a full thin decomposition and a truncated
//     one covering the top rank triplets, singular values always descending.
//   - Gonum — the exact backend, a thin wrapper over gonum's mat.SVD.
//     Its truncated form computes the full decomposition and slices it, so
//     it stays exact whatever width is requested.
//   - Randomized — Halko-style range finding: a seeded Gaussian sketch,
//     optional power iterations with QR re-orthonormalization, then an
//     exact decomposition of the small projected matrix. Trades accuracy
//     for speed when the wanted rank is far below min(m,n).
//
// ⚙️ Usage:
//
//	var f svd.Factorizer = svd.Randomized{Seed: 42}
//	u, s, v, err := f.Truncated(a, 20, 10, 2) // rank 20, oversample 10, 2 power iters
//
// Determinism: both backends are deterministic — Gonum trivially so,
// Randomized through its seed. The same seed on the same matrix reproduces
// the factorization bit for bit.
package svd
