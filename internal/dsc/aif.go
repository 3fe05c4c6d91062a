package dsc

import (
	"fmt"
	"math"

	"github.com/bnema/dscfwd/internal/domain"
)

// Grid holds the observed sampling times and the upsampled internal times
// used for convolution.
type Grid struct {
	Upsample int
	Delt     float64
	HDelt    float64
	Times    []float64
	HTimes   []float64
}

func NewGrid(n int, delt float64, upsample int) Grid {
	tsamp := make([]float64, n)
	for i := range tsamp {
		tsamp[i] = float64(i) * delt
	}

	nh := (n-1)*upsample + 1
	hdelt := delt / float64(upsample)
	htsamp := make([]float64, nh)
	for i := 1; i < nh; i++ {
		htsamp[i] = htsamp[i-1] + hdelt
	}
	htsamp[nh-1] = tsamp[n-1]

	return Grid{Upsample: upsample, Delt: delt, HDelt: hdelt, Times: tsamp, HTimes: htsamp}
}

func (g Grid) N() int { return len(g.Times) }

func (g Grid) M() int { return len(g.HTimes) }

// NewAIF converts a raw arterial signal into a concentration curve relative
// to its first sample and linearly upsamples it onto the internal grid.
func NewAIF(signal []float64, te float64, g Grid) ([]float64, error) {
	if len(signal) != g.N() {
		return nil, fmt.Errorf("%w: %d samples for a %d point grid", domain.ErrInvalidArterialSignal, len(signal), g.N())
	}
	for i, s := range signal {
		if !(s > 0) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v, want a finite positive value", domain.ErrInvalidArterialSignal, i+1, s)
		}
	}

	low := make([]float64, len(signal))
	for i, s := range signal {
		low[i] = -math.Log(s/signal[0]) / te
	}

	up := g.Upsample
	aif := make([]float64, g.M())
	for i := range aif {
		j := i / up
		frac := float64(i-j*up) / float64(up)
		if j+1 >= len(low) {
			aif[i] = low[len(low)-1]
			continue
		}
		aif[i] = low[j] + frac*(low[j+1]-low[j])
	}

	return aif, nil
}

// Shift moves curve forward in time by delta using linear interpolation
// between internal samples. Before the first sample the curve is zero and
// past the last it holds the final value. The sample landing on index 0 is
// scaled by the fractional shift rather than held.
func Shift(curve []float64, delta, hdelt float64) []float64 {
	m := len(curve)
	out := make([]float64, m)
	if math.IsNaN(delta) {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	shift := math.Floor(delta / hdelt)
	frac := (delta - shift*hdelt) / hdelt
	// Beyond the grid span every sample saturates; clamping keeps the int
	// conversion defined.
	shift = math.Max(math.Min(shift, float64(m+1)), -float64(m+1))
	nshift := int(shift)

	for i := range out {
		index := i - nshift
		switch {
		case index == 0:
			out[i] = curve[0] * frac
		case index < 0:
			out[i] = 0
		case index > m-1:
			out[i] = curve[m-1]
		default:
			out[i] = curve[index] + (curve[index-1]-curve[index])*frac
		}
	}

	return out
}
