// Package fedbatch holds rate and yield relations for a fed-batch bioreactor.
package fedbatch

import (
	"math"

	"github.com/tazomatalax/lab-calculator/internal/domain"
)

// FeedingRate returns Fs = (Sf − S) / t.
func FeedingRate(sf, s, t float64) (float64, error) {
	if t <= 0 {
		return 0, domain.InvalidInput("fedbatch.feeding_rate", "t", "Time must be greater than zero.")
	}
	return (sf - s) / t, nil
}

// BiomassAtTime returns Xt = X0 + μ·X0·t.
//
// This is a single Euler step of exponential growth, not the closed form;
// see BiomassAtTimeExponential. Both are kept so results stay comparable.
func BiomassAtTime(x0, mu, t float64) float64 {
	return x0 + (mu * x0 * t)
}

// BiomassAtTimeExponential returns Xt = X0·e^(μ·t).
func BiomassAtTimeExponential(x0, mu, t float64) float64 {
	return x0 * math.Exp(mu*t)
}

// ProductFormationRate returns rp = dP/dt.
func ProductFormationRate(dP, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, domain.InvalidInput("fedbatch.product_formation_rate", "dt",
			"Change in time (dt) must be greater than zero.")
	}
	return dP / dt, nil
}

// YieldCoefficient returns Yx/s = ΔX/ΔS.
func YieldCoefficient(deltaX, deltaS float64) (float64, error) {
	if deltaS == 0 {
		return 0, domain.InvalidInput("fedbatch.yield_coefficient", "delta_s",
			"Change in substrate concentration (ΔS) must not be zero.")
	}
	return deltaX / deltaS, nil
}
