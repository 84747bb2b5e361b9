package ialm

import "gonum.org/v1/gonum/mat"

// softThreshold writes the entrywise ℓ1 proximal map of t into dst:
// entries with |t| ≤ eps collapse to exactly zero, larger entries move
// toward zero by eps. dst and t must share shape and may alias.
func softThreshold(dst, t *mat.Dense, eps float64) {
	in, out := t.RawMatrix(), dst.RawMatrix()
	for i := 0; i < in.Rows; i++ {
		row := in.Data[i*in.Stride : i*in.Stride+in.Cols]
		o := out.Data[i*out.Stride : i*out.Stride+out.Cols]
		for j, v := range row {
			switch {
			case v > eps:
				o[j] = v - eps
			case v < -eps:
				o[j] = v + eps
			default:
				o[j] = 0
			}
		}
	}
}

// shrinkSpectrum rebuilds dst = U[:,:svp] · diag(d[:svp]−shift) · V[:,:svp]ᵀ,
// the nuclear-norm proximal step over the svp singular values that survive
// the shift. svp = 0 zeroes dst.
func shrinkSpectrum(dst *mat.Dense, u *mat.Dense, d []float64, v *mat.Dense, svp int, shift float64) {
	if svp == 0 {
		dst.Zero()
		return
	}

	ur, _ := u.Dims()
	vr, _ := v.Dims()

	shrunk := make([]float64, svp)
	for i := range shrunk {
		shrunk[i] = d[i] - shift
	}

	dst.Product(
		u.Slice(0, ur, 0, svp),
		mat.NewDiagDense(svp, shrunk),
		v.Slice(0, vr, 0, svp).T(),
	)
}
