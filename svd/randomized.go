package svd

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Randomized approximates a truncated SVD by range finding: project a onto
// a seeded Gaussian sketch, tighten the captured subspace with power
// iterations (re-orthonormalizing through QR each pass), then decompose the
// small projected matrix exactly.
//
// The sketch is rank+oversample columns wide; when that width reaches
// min(m,n) the backend silently degrades to the exact decomposition, since
// sketching cannot be cheaper than the matrix itself at that point.
type Randomized struct {
	// Seed feeds the Gaussian sketch. The same seed on the same input
	// reproduces the factorization bit for bit.
	Seed uint64
}

var _ Factorizer = Randomized{}

// Full delegates to the exact backend; randomization buys nothing when the
// whole spectrum is wanted.
func (Randomized) Full(a mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	return Gonum{}.Full(a)
}

// Truncated computes an approximate decomposition of the top rank singular
// triplets of a.
func (r Randomized) Truncated(a mat.Matrix, rank, oversample, powerIters int) (*mat.Dense, []float64, *mat.Dense, error) {
	if rank < 1 {
		return nil, nil, nil, ErrBadRank
	}

	m, n := a.Dims()
	if rank >= min(m, n) {
		return Gonum{}.Truncated(a, rank, 0, 0)
	}

	sketch := min(rank+oversample, n)

	// Gaussian test matrix Ω (n×sketch), then Y = A·Ω spans an approximate
	// range of A.
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(r.Seed, r.Seed)}
	omega := mat.NewDense(n, sketch, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < sketch; j++ {
			omega.Set(i, j, normal.Rand())
		}
	}

	var y mat.Dense
	y.Mul(a, omega)
	q := orthonormal(&y)

	// Each power pass widens the spectral gap seen by the sketch, pulling
	// it toward the dominant subspace: Q ← orth(A·orth(Aᵀ·Q)).
	for i := 0; i < powerIters; i++ {
		var z mat.Dense
		z.Mul(a.T(), q)
		qz := orthonormal(&z)

		var y2 mat.Dense
		y2.Mul(a, qz)
		q = orthonormal(&y2)
	}

	// B = Qᵀ·A is sketch×n, small enough for an exact decomposition;
	// rotating its left factor back through Q recovers U.
	var b mat.Dense
	b.Mul(q.T(), a)

	ub, s, v, err := Gonum{}.Full(&b)
	if err != nil {
		return nil, nil, nil, err
	}

	var u mat.Dense
	u.Mul(q, ub)

	if rank >= len(s) {
		return &u, s, v, nil
	}

	return truncate(&u, s, v, rank)
}

// orthonormal returns an orthonormal basis of the column space of a via a
// thin QR factorization.
func orthonormal(a *mat.Dense) *mat.Dense {
	ar, ac := a.Dims()

	var qr mat.QR
	qr.Factorize(a)

	var q mat.Dense
	qr.QTo(&q)

	// QTo yields the square m×m factor; only the leading ac columns span a.
	return q.Slice(0, ar, 0, min(ar, ac)).(*mat.Dense)
}
