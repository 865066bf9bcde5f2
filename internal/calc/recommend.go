package calc

import (
	"fmt"

	"github.com/frigosoft/coldcalc/internal/models"
)

// Capacity breakpoints in kW for the system and compressor tiers, and
// temperature breakpoints in degC for the refrigerant tiers. These encode
// one fixed decision table regardless of locale.
const (
	systemMonoblockMaxKW = 5.0
	systemSplitMaxKW     = 15.0
	systemRackMaxKW      = 50.0

	compressorHermeticMaxKW = 5.0
	compressorSemiMaxKW     = 20.0
	compressorScrewMaxKW    = 100.0

	refrigerantHighTempMinC   = 5.0
	refrigerantMediumTempMinC = -5.0

	adviceVariableSpeedMinKW  = 30.0
	adviceActiveDefrostMaxC   = -15.0
	adviceMultiEvapMinVolume  = 400.0
	adviceRedundancyMinKW     = 50.0
	powerEstimateUncertainty  = 0.15
)

// copForTemperature is the assumed seasonal coefficient of performance per
// refrigerant temperature tier, used for the power draw estimate.
func copForTemperature(tempC float64) float64 {
	switch {
	case tempC >= refrigerantHighTempMinC:
		return 3.0
	case tempC >= refrigerantMediumTempMinC:
		return 2.2
	default:
		return 1.6
	}
}

// Recommend selects an equipment class for the given capacity (watts),
// storage temperature (degC), and room volume (m3).
func Recommend(capacityWatts, tempC, volume float64) models.Recommendation {
	kw := capacityWatts / 1000

	var system string
	switch {
	case kw < systemMonoblockMaxKW:
		system = "monoblock unit"
	case kw < systemSplitMaxKW:
		system = "split system"
	case kw < systemRackMaxKW:
		system = "multi-compressor rack"
	default:
		system = "industrial central plant"
	}

	var compressor string
	switch {
	case kw < compressorHermeticMaxKW:
		compressor = "hermetic"
	case kw < compressorSemiMaxKW:
		compressor = "semi-hermetic"
	case kw < compressorScrewMaxKW:
		compressor = "screw"
	default:
		compressor = "screw rack"
	}

	var refrigerant string
	switch {
	case tempC >= refrigerantHighTempMinC:
		refrigerant = "R134a"
	case tempC >= refrigerantMediumTempMinC:
		refrigerant = "R448A"
	default:
		refrigerant = "R404A"
	}

	cop := copForTemperature(tempC)
	low := kw / cop * (1 - powerEstimateUncertainty)
	high := kw / cop * (1 + powerEstimateUncertainty)
	powerRange := fmt.Sprintf("%.1f - %.1f kW", low, high)

	var notes []models.AdviceNote
	if kw > adviceVariableSpeedMinKW {
		notes = append(notes, models.AdviceVariableSpeed)
	}
	if tempC <= adviceActiveDefrostMaxC {
		notes = append(notes, models.AdviceActiveDefrost)
	}
	if volume > adviceMultiEvapMinVolume {
		notes = append(notes, models.AdviceMultipleEvaporators)
	}
	if kw >= adviceRedundancyMinKW {
		notes = append(notes, models.AdviceRedundantCompressor)
	}

	return models.Recommendation{
		SystemClass:     system,
		CompressorClass: compressor,
		Refrigerant:     refrigerant,
		PowerRange:      powerRange,
		Notes:           notes,
	}
}
