// Package continuous holds steady-state relations for a continuous (chemostat) bioreactor.
package continuous

import "github.com/tazomatalax/lab-calculator/internal/domain"

// DilutionRate returns D = F/V.
func DilutionRate(flowRate, volume float64) (float64, error) {
	return dilutionRate("continuous.dilution_rate", flowRate, volume)
}

// SteadyStateBiomass applies the Monod relation Xss = μmax·Sss / (Ks + Sss).
func SteadyStateBiomass(muMax, sss, ks float64) (float64, error) {
	if ks+sss == 0 {
		return 0, domain.InvalidInput("continuous.steady_state_biomass", "ks",
			"Ks + Sss must not be zero.")
	}
	return (muMax * sss) / (ks + sss), nil
}

// SubstrateUtilizationRate returns rs = D·(Sin − Sss)·Xss.
func SubstrateUtilizationRate(flowRate, volume, sin, sss, xss float64) (float64, error) {
	d, err := dilutionRate("continuous.substrate_utilization_rate", flowRate, volume)
	if err != nil {
		return 0, err
	}
	return d * (sin - sss) * xss, nil
}

// Productivity returns P = D·Pss.
func Productivity(flowRate, volume, pss float64) (float64, error) {
	d, err := dilutionRate("continuous.productivity", flowRate, volume)
	if err != nil {
		return 0, err
	}
	return d * pss, nil
}

func dilutionRate(op string, flowRate, volume float64) (float64, error) {
	if volume <= 0 {
		return 0, domain.InvalidInput(op, "volume", "Volume must be greater than zero.")
	}
	return flowRate / volume, nil
}
