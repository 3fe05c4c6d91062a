package dsc

import "math"

// Downsample picks every upsample-th internal sample, adding the arterial
// contribution at the same positions when art is non-nil.
func Downsample(c, art []float64, n, upsample int) []float64 {
	low := make([]float64, n)
	for i := range low {
		low[i] = c[i*upsample]
		if art != nil {
			low[i] += art[i*upsample]
		}
	}
	return low
}

// Signal maps concentration to the DSC signal sig0*exp(-C*te).
func Signal(low []float64, sig0, te float64) []float64 {
	out := make([]float64, len(low))
	for i, c := range low {
		out[i] = sig0 * math.Exp(-c*te)
	}
	return out
}

func Finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
