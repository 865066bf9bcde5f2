// Package calc implements the thermal load calculation and equipment
// recommendation engines for cold room sizing.
//
// Both engines are pure: identical inputs always yield identical results,
// and neither touches the clock, randomness, or any shared state.
package calc

import "github.com/frigosoft/coldcalc/internal/models"

// Thermal constants. These are simplified industry heuristics, not
// CFD-grade physics.
const (
	// InsulationConductivity is the thermal conductivity of polyurethane
	// panel in W/(m*K). U-value = conductivity / thickness.
	InsulationConductivity = 0.023
	// FloorPenaltyUValue is used when no floor insulation data is available,
	// in W/(m2*K). Never zero: an uninsulated slab still conducts.
	FloorPenaltyUValue = 1.2

	// AirSpecificHeat is c_p of air in J/(kg*K).
	AirSpecificHeat = 1006.0
	// BaseAirChangesPerDay is the natural-leakage air change count.
	BaseAirChangesPerDay = 4.0
	// AirChangesPerDoorOpening is the additional air change fraction per
	// door opening per day.
	AirChangesPerDoorOpening = 0.1

	// FanPowerSmallRoom and FanPowerLargeRoom are W per m3 of room volume.
	FanPowerSmallRoom = 20.0
	FanPowerLargeRoom = 12.0
	// SmallRoomVolumeThreshold separates the two fan estimates, in m3.
	SmallRoomVolumeThreshold = 150.0
	// LightingPower is W per m2 of floor area.
	LightingPower = 10.0

	// DefrostFraction of the corrected load is budgeted for defrost cycles
	// on rooms at or below 0 degC, scaled by the defrost factor.
	DefrostFraction = 0.05

	secondsPerDay  = 86400.0
	secondsPerHour = 3600.0
)

// SupportedTemperatures is the fixed set of storage temperatures the engine
// accepts, in degC. Any other value is a hard failure, never a silent
// substitution.
var SupportedTemperatures = map[float64]bool{
	12: true, 5: true, 0: true, -5: true,
	-15: true, -18: true, -20: true, -25: true,
}

// productSpecificHeat maps product categories to specific heat above
// freezing, in J/(kg*K).
var productSpecificHeat = map[models.ProductType]float64{
	models.ProductMeat:      3200,
	models.ProductFish:      3400,
	models.ProductDairy:     3300,
	models.ProductFruit:     3800,
	models.ProductVegetable: 3900,
	models.ProductBeverage:  4100,
	models.ProductGeneral:   3500,
}

// climateMultiplier corrects the base load for the installation climate.
// Unrecognized zones default to temperate.
var climateMultiplier = map[models.ClimateZone]float64{
	models.ClimateCold:      0.95,
	models.ClimateTemperate: 1.00,
	models.ClimateHot:       1.10,
	models.ClimateTropical:  1.20,
}

// humidityMultiplier corrects the base load for ambient humidity.
var humidityMultiplier = map[models.HumidityLevel]float64{
	models.HumidityLow:    0.97,
	models.HumidityNormal: 1.00,
	models.HumidityHigh:   1.05,
}

// ProductSpecificHeat returns the specific heat for a product category,
// falling back to the general figure for unknown categories.
func ProductSpecificHeat(p models.ProductType) float64 {
	if cp, ok := productSpecificHeat[p]; ok {
		return cp
	}
	return productSpecificHeat[models.ProductGeneral]
}

// ClimateMultiplier returns the load multiplier for a climate zone,
// defaulting to temperate (1.0) when the zone is unrecognized.
func ClimateMultiplier(z models.ClimateZone) float64 {
	if m, ok := climateMultiplier[z]; ok {
		return m
	}
	return climateMultiplier[models.ClimateTemperate]
}

// HumidityMultiplier returns the load multiplier for a humidity level,
// defaulting to normal (1.0) when the level is unrecognized.
func HumidityMultiplier(h models.HumidityLevel) float64 {
	if m, ok := humidityMultiplier[h]; ok {
		return m
	}
	return humidityMultiplier[models.HumidityNormal]
}

// airDensity returns the density of air at the given temperature in kg/m3,
// using the ideal gas approximation at atmospheric pressure.
func airDensity(tempC float64) float64 {
	return 353.0 / (273.15 + tempC)
}
