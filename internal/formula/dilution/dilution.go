// Package dilution plans culture dilutions from optical density readings.
package dilution

import "github.com/tazomatalax/lab-calculator/internal/domain"

// Plan describes how to make FinalVolume of diluted culture.
type Plan struct {
	// SampleVolume is the volume of culture (sample) to take.
	SampleVolume   float64
	DiluentVolume  float64
	DilutionFactor float64
}

// OD returns the optical density of the undiluted culture.
func OD(absorbance, dilutionFactor float64) float64 {
	return absorbance * dilutionFactor
}

// ByVolume scales the final volume by the OD ratio to get the culture volume.
func ByVolume(currentOD, targetOD, finalVolume float64) (Plan, error) {
	if err := checkODs("dilution.by_volume", currentOD, targetOD); err != nil {
		return Plan{}, err
	}

	culture := (targetOD / currentOD) * finalVolume
	return Plan{
		SampleVolume:   culture,
		DiluentVolume:  finalVolume - culture,
		DilutionFactor: currentOD / targetOD,
	}, nil
}

// ByFactor derives the dilution factor first and divides the final volume by it.
// It yields the same sample volume as ByVolume.
func ByFactor(currentOD, targetOD, finalVolume float64) (Plan, error) {
	if err := checkODs("dilution.by_factor", currentOD, targetOD); err != nil {
		return Plan{}, err
	}

	factor := currentOD / targetOD
	sample := finalVolume / factor
	return Plan{
		SampleVolume:   sample,
		DiluentVolume:  finalVolume - sample,
		DilutionFactor: factor,
	}, nil
}

// FactorFromVolumes returns total volume over sample volume.
func FactorFromVolumes(sampleVolume, diluentVolume float64) (float64, error) {
	if sampleVolume <= 0 {
		return 0, domain.InvalidInput("dilution.factor_from_volumes", "sample_volume",
			"Sample volume must be greater than zero.")
	}
	return (sampleVolume + diluentVolume) / sampleVolume, nil
}

func checkODs(op string, currentOD, targetOD float64) error {
	if currentOD <= 0 {
		return domain.InvalidInput(op, "current_od", "Current OD must be greater than zero.")
	}
	if targetOD <= 0 {
		return domain.InvalidInput(op, "target_od", "Target OD must be greater than zero.")
	}
	if targetOD >= currentOD {
		return domain.InvalidInput(op, "target_od", "Target OD must be less than current OD for dilution.")
	}
	return nil
}
