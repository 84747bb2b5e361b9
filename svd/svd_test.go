package svd_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/katalvlaran/rpca/svd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// lowRank builds an m×n matrix of exact rank r from seeded Gaussian factors.
func lowRank(m, n, r int, seed uint64) *mat.Dense {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)}

	left := mat.NewDense(m, r, nil)
	right := mat.NewDense(r, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			left.Set(i, j, normal.Rand())
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < n; j++ {
			right.Set(i, j, normal.Rand())
		}
	}

	var a mat.Dense
	a.Mul(left, right)

	return &a
}

// reconstruct assembles u·diag(s)·vᵀ.
func reconstruct(u *mat.Dense, s []float64, v *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Product(u, mat.NewDiagDense(len(s), s), v.T())

	return &out
}

// TestGonum_FullReconstructs verifies the exact backend: descending
// singular values and a reconstruction accurate to machine precision.
func TestGonum_FullReconstructs(t *testing.T) {
	a := lowRank(8, 5, 5, 1)

	u, s, v, err := svd.Gonum{}.Full(a)
	require.NoError(t, err)
	require.Len(t, s, 5, "thin SVD yields min(m,n) values")

	assert.True(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(s))), "values descend")

	var diff mat.Dense
	diff.Sub(a, reconstruct(u, s, v))
	assert.LessOrEqual(t, mat.Norm(&diff, 2), 1e-10*mat.Norm(a, 2))
}

// TestGonum_TruncatedSlices verifies exact truncation: the leading triplets
// of the full decomposition, and ErrBadRank below rank 1.
func TestGonum_TruncatedSlices(t *testing.T) {
	a := lowRank(10, 6, 6, 2)

	_, _, _, err := svd.Gonum{}.Truncated(a, 0, 0, 0)
	assert.ErrorIs(t, err, svd.ErrBadRank)

	u, s, v, err := svd.Gonum{}.Truncated(a, 2, 0, 0)
	require.NoError(t, err)
	require.Len(t, s, 2)

	ur, uc := u.Dims()
	vr, vc := v.Dims()
	assert.Equal(t, [4]int{10, 2, 6, 2}, [4]int{ur, uc, vr, vc})

	_, full, _, err := svd.Gonum{}.Full(a)
	require.NoError(t, err)
	assert.Equal(t, full[:2], s, "truncation keeps the exact leading values")
}

// TestRandomized_CapturesLowRank verifies the range finder on an exactly
// rank-3 matrix: the top three singular values match the exact ones and the
// rank-3 reconstruction recovers the matrix.
func TestRandomized_CapturesLowRank(t *testing.T) {
	a := lowRank(30, 20, 3, 4)

	u, s, v, err := svd.Randomized{Seed: 1}.Truncated(a, 3, 10, 2)
	require.NoError(t, err)
	require.Len(t, s, 3)

	_, exact, _, err := svd.Gonum{}.Full(a)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(s, exact[:3], 1e-8),
		"top values match the exact decomposition: %v vs %v", s, exact[:3])

	var diff mat.Dense
	diff.Sub(a, reconstruct(u, s, v))
	assert.LessOrEqual(t, mat.Norm(&diff, 2), 1e-8*mat.Norm(a, 2))
}

// TestRandomized_Deterministic verifies seed-reproducibility and the exact
// fallback once the requested rank reaches min(m,n).
func TestRandomized_Deterministic(t *testing.T) {
	a := lowRank(15, 10, 4, 6)

	f := svd.Randomized{Seed: 99}
	u1, s1, v1, err := f.Truncated(a, 4, 8, 1)
	require.NoError(t, err)
	u2, s2, v2, err := f.Truncated(a, 4, 8, 1)
	require.NoError(t, err)

	assert.Equal(t, s1, s2, "same seed, same values")
	assert.True(t, mat.Equal(u1, u2), "same seed, same left factor")
	assert.True(t, mat.Equal(v1, v2), "same seed, same right factor")

	// rank ≥ min(m,n) degrades to the exact decomposition.
	_, sFull, _, err := f.Truncated(a, 10, 0, 0)
	require.NoError(t, err)
	_, sExact, _, err := svd.Gonum{}.Truncated(a, 10, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, sExact, sFull)
}

// TestRandomized_BadRank mirrors the exact backend's validation.
func TestRandomized_BadRank(t *testing.T) {
	a := lowRank(5, 5, 2, 8)

	_, _, _, err := svd.Randomized{}.Truncated(a, -1, 0, 0)
	assert.ErrorIs(t, err, svd.ErrBadRank)
}
