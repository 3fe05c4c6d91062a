package dsc

import (
	"fmt"
	"math"

	"github.com/bnema/dscfwd/internal/domain"
)

// flatPrecision is the near-zero prior precision an ARD slot starts from.
const flatPrecision = 1e-12

// digammaHalf is ψ(0.5) = -γ - 2·ln 2.
const digammaHalf = -0.57721566490153286 - 2*math.Ln2

// SetupARD resets the prior on every ARD slot to a flat, zero-mean prior and
// returns the free-energy contribution computed from the posterior.
func SetupARD(posterior, prior *domain.MVN, indices []int) (float64, error) {
	if len(indices) == 0 {
		return 0, nil
	}

	prec := prior.Precisions()
	for _, k := range indices {
		prec.SetSym(k, k, flatPrecision)
	}
	if err := prior.SetPrecisions(prec); err != nil {
		return 0, fmt.Errorf("setup ard prior: %w", err)
	}

	var fard float64
	for _, k := range indices {
		prior.SetMean(k, 0)
		fard += ardFreeEnergy(posterior.Mean(k), posterior.Variance(k))
	}

	return fard, nil
}

// UpdateARD applies the fixed-point rule prior variance = mean² + variance on
// every ARD slot and returns the free-energy contribution.
func UpdateARD(posterior, prior *domain.MVN, indices []int) (float64, error) {
	if len(indices) == 0 {
		return 0, nil
	}

	cov := prior.Covariance()
	var fard float64
	for _, k := range indices {
		mu, v := posterior.Mean(k), posterior.Variance(k)
		cov.SetSym(k, k, mu*mu+v)
		fard += ardFreeEnergy(mu, v)
	}
	if err := prior.SetCovariance(cov); err != nil {
		return 0, fmt.Errorf("update ard prior: %w", err)
	}

	return fard, nil
}

// ardFreeEnergy is the closed-form ARD term with the Gamma shape c fixed at 0.5.
func ardFreeEnergy(mean, variance float64) float64 {
	b := 2 / (mean*mean + variance)
	lgHalf, _ := math.Lgamma(0.5)
	return -1.5*(math.Log(b)+digammaHalf) - 0.5 - lgHalf - 0.5*math.Log(b)
}
