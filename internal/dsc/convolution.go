package dsc

import (
	"github.com/bnema/dscfwd/internal/domain"
	"gonum.org/v1/gonum/mat"
)

// ConvolutionMatrix builds the lower-triangular operator that convolves a
// residue curve with aif on the internal grid.
func ConvolutionMatrix(aif []float64, scheme domain.ConvolutionScheme) *mat.TriDense {
	m := len(aif)
	a := mat.NewTriDense(m, mat.Lower, nil)

	switch scheme {
	case domain.ConvolutionVoltera:
		fillVoltera(a, aif)
	default:
		for i := 0; i < m; i++ {
			for j := 0; j <= i; j++ {
				a.SetTri(i, j, aif[i-j])
			}
		}
	}

	return a
}

// fillVoltera uses the Volterra discretisation of Sourbron (2007), treating
// the AIF as zero one sample before the start and one sample past the end.
func fillVoltera(a *mat.TriDense, aif []float64) {
	m := len(aif)
	ext := make([]float64, m+2)
	copy(ext[1:], aif)

	for i := 0; i < m; i++ {
		for j := 0; j <= i; j++ {
			var v float64
			switch {
			case j == 0:
				v = (2*ext[i+1] + ext[i]) / 6
			case j == i:
				v = (2*ext[1] + ext[2]) / 6
			default:
				z := i - j
				v = (4*ext[z] + ext[z-1] + ext[z+1]) / 6
			}
			a.SetTri(i, j, v)
		}
	}
}

// Concentration returns cbf * hdelt * A * residue.
func Concentration(a *mat.TriDense, residue []float64, cbf, hdelt float64) []float64 {
	m, _ := a.Dims()
	var c mat.VecDense
	c.MulVec(a, mat.NewVecDense(m, residue))
	c.ScaleVec(cbf*hdelt, &c)

	return c.RawVector().Data
}
