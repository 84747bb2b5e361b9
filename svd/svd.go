package svd

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrFactorization indicates the underlying decomposition routine did
	// not converge on the given matrix.
	ErrFactorization = errors.New("svd: factorization did not converge")

	// ErrBadRank indicates a truncated decomposition was requested with a
	// rank below 1.
	ErrBadRank = errors.New("svd: requested rank must be at least 1")
)

// Factorizer is the decomposition primitive injected into the IALM loop.
// Implementations must return singular values in descending order and must
// not mutate the input matrix.
type Factorizer interface {
	// Full computes a thin SVD of a: u is m×r, v is n×r, r = min(m,n),
	// and a = u · diag(s) · vᵀ.
	Full(a mat.Matrix) (u *mat.Dense, s []float64, v *mat.Dense, err error)

	// Truncated computes a decomposition covering the top rank singular
	// triplets of a, possibly approximately. oversample widens the sketch
	// and powerIters sharpens it; exact backends may ignore both.
	Truncated(a mat.Matrix, rank, oversample, powerIters int) (u *mat.Dense, s []float64, v *mat.Dense, err error)
}

// Gonum is the exact backend over gonum's mat.SVD.
type Gonum struct{}

var _ Factorizer = Gonum{}

// Full computes the exact thin SVD of a.
func (Gonum) Full(a mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	var f mat.SVD
	if ok := f.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, nil, ErrFactorization
	}

	var u, v mat.Dense
	f.UTo(&u)
	f.VTo(&v)

	return &u, f.Values(nil), &v, nil
}

// Truncated computes the full decomposition and slices the leading rank
// triplets; the result is exact regardless of oversample and powerIters.
func (g Gonum) Truncated(a mat.Matrix, rank, _, _ int) (*mat.Dense, []float64, *mat.Dense, error) {
	if rank < 1 {
		return nil, nil, nil, ErrBadRank
	}

	u, s, v, err := g.Full(a)
	if err != nil {
		return nil, nil, nil, err
	}
	if rank >= len(s) {
		return u, s, v, nil
	}

	return truncate(u, s, v, rank)
}

// truncate slices the leading rank columns of u and v and the leading rank
// singular values. Callers guarantee rank < len(s).
func truncate(u *mat.Dense, s []float64, v *mat.Dense, rank int) (*mat.Dense, []float64, *mat.Dense, error) {
	ur, _ := u.Dims()
	vr, _ := v.Dims()

	ut := u.Slice(0, ur, 0, rank).(*mat.Dense)
	vt := v.Slice(0, vr, 0, rank).(*mat.Dense)

	return ut, s[:rank], vt, nil
}
