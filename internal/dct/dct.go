package dct

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform is an orthonormal separable 2-D discrete cosine transform over a
// full plane of h rows by w columns. The 1-D basis matrices are precomputed
// once per plane size; forward and inverse transforms are exact inverses up
// to floating-point rounding.
type Transform struct {
	w, h           int
	basisW, basisH *mat.Dense
}

func New(w, h int) *Transform {
	return &Transform{
		w:      w,
		h:      h,
		basisW: basis(w),
		basisH: basis(h),
	}
}

// basis builds the n x n orthonormal DCT-II basis matrix. Row i holds the
// i-th basis function sampled at the 2j+1 half-sample grid.
func basis(n int) *mat.Dense {
	b := mat.NewDense(n, n, nil)
	nf := float64(n)
	for j := range n {
		// i = 0
		b.Set(0, j, 1.0/math.Sqrt(nf))
	}
	for i := 1; i < n; i++ {
		for j := range n {
			b.Set(i, j, math.Sqrt(2.0/nf)*
				math.Cos(
					(float64(i)*math.Pi*(float64(j)*2+1))/
						(2.0*nf),
				))
		}
	}
	return b
}

// Forward transforms a row-major plane of h*w samples into a coefficient
// grid. The input slice is not modified.
func (t *Transform) Forward(data []float64) *mat.Dense {
	x := mat.NewDense(t.h, t.w, data)
	var coeffs mat.Dense
	coeffs.Product(t.basisH, x, t.basisW.T())
	return &coeffs
}

// Inverse reconstructs the spatial plane from a coefficient grid produced by
// Forward, returning a new row-major slice of h*w samples.
func (t *Transform) Inverse(coeffs *mat.Dense) []float64 {
	var x mat.Dense
	x.Product(t.basisH.T(), coeffs, t.basisW)
	raw := x.RawMatrix()
	out := make([]float64, t.w*t.h)
	copy(out, raw.Data)
	return out
}
