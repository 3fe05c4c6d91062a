package dsc

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// maxDispersion caps exp(lambda); larger values make the Gamma CDF blow up.
const maxDispersion = 10

// Residue evaluates the tissue residue function on times, relative to the
// first time point. logMTT and logLambda are the log-domain transit-time mean
// and dispersion; ret is the retained fraction in [0, 1].
//
// The transit-time distribution is a Gamma moment-matched to mean m and
// variance m²/lambda. If those moments do not describe a valid Gamma the
// residue is all NaN.
func Residue(times []float64, logMTT, logLambda, ret float64) []float64 {
	m := math.Exp(logMTT)
	lambda := math.Min(math.Exp(logLambda), maxDispersion)
	v := m * m / lambda

	shape := m * m / v
	scale := v / m

	out := make([]float64, len(times))
	if !validGamma(shape, scale) {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	dist := distuv.Gamma{Alpha: shape, Beta: 1 / scale}
	t0 := times[0]
	for i, t := range times {
		r := 1 - dist.CDF(t-t0)
		out[i] = (1-ret)*r + ret
	}

	return out
}

func validGamma(shape, scale float64) bool {
	return shape > 0 && scale > 0 && !math.IsInf(shape, 0) && !math.IsInf(scale, 0)
}
