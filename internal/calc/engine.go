package calc

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/frigosoft/coldcalc/internal/models"
)

// Calculate maps a complete parameter set to a capacity result.
//
// Rounding is applied only when the result is assembled, never between
// intermediate steps, so errors do not compound. A storage temperature
// outside the supported set is a hard failure (models.ErrUnsupportedTemperature).
func Calculate(p models.RoomParameters) (*models.CalculationResult, error) {
	if !SupportedTemperatures[p.StorageTemp] {
		slog.Error("Calculate rejected unsupported storage temperature", "storage_temp", p.StorageTemp)
		return nil, fmt.Errorf("%w: %g", models.ErrUnsupportedTemperature, p.StorageTemp)
	}
	if p.Length <= 0 || p.Width <= 0 || p.Height <= 0 {
		slog.Error("Calculate rejected non-positive dimensions", "length", p.Length, "width", p.Width, "height", p.Height)
		return nil, fmt.Errorf("%w: %gx%gx%g", models.ErrInvalidDimensions, p.Length, p.Width, p.Height)
	}

	volume := p.Volume()
	floorArea := p.FloorArea()
	deltaT := p.AmbientTemp - p.StorageTemp

	transmission := transmissionLoad(p, deltaT)
	infiltration := infiltrationLoad(p, volume, deltaT)
	product := productLoad(p)
	equipment := equipmentLoad(volume, floorArea)

	baseTotal := transmission + infiltration + product + equipment
	corrected := baseTotal * ClimateMultiplier(p.Climate) * humidityFactor(p)

	var defrost float64
	if p.StorageTemp <= 0 {
		defrost = corrected * DefrostFraction * p.DefrostFactor
	}

	total := (corrected + defrost) * p.SafetyFactor * p.ExpansionFactor

	result := &models.CalculationResult{
		TotalCapacityWatts: math.Round(total),
		TotalCapacityKW:    round2(total / 1000),
		LoadPerVolume:      round2(total / volume),
		LoadPerArea:        round2(total / floorArea),
		Breakdown: models.LoadBreakdown{
			Transmission:   math.Round(transmission),
			Infiltration:   math.Round(infiltration),
			Product:        math.Round(product),
			Equipment:      math.Round(equipment),
			Defrost:        math.Round(defrost),
			BaseTotal:      math.Round(baseTotal),
			CorrectedTotal: math.Round(corrected),
		},
		Factors: models.AppliedFactors{
			Safety:    p.SafetyFactor,
			Defrost:   p.DefrostFactor,
			Expansion: p.ExpansionFactor,
			Climate:   ClimateMultiplier(p.Climate),
			Humidity:  humidityFactor(p),
		},
		Room: models.RoomEcho{
			Dimensions:  p.DimensionsString(),
			Volume:      round2(volume),
			StorageTemp: p.StorageTemp,
			AmbientTemp: p.AmbientTemp,
		},
		Recommendation: Recommend(total, p.StorageTemp, volume),
	}

	slog.Debug("Calculate completed",
		"total_w", result.TotalCapacityWatts,
		"transmission_w", result.Breakdown.Transmission,
		"infiltration_w", result.Breakdown.Infiltration,
		"product_w", result.Breakdown.Product,
		"equipment_w", result.Breakdown.Equipment,
		"defrost_w", result.Breakdown.Defrost)
	return result, nil
}

// transmissionLoad sums conduction through walls, ceiling, and floor.
// U-value per surface = conductivity / thickness; a floor with no insulation
// data uses the fixed penalty U-value instead of zero.
func transmissionLoad(p models.RoomParameters, deltaT float64) float64 {
	wallArea := 2 * (p.Length + p.Width) * p.Height
	ceilingArea := p.FloorArea()
	floorArea := p.FloorArea()

	load := wallArea * uValue(p.WallInsulation) * deltaT
	load += ceilingArea * uValue(p.CeilingInsulation) * deltaT

	floorU := FloorPenaltyUValue
	if p.FloorInsulation > 0 {
		floorU = uValue(p.FloorInsulation)
	}
	load += floorArea * floorU * deltaT

	return math.Max(load, 0)
}

func uValue(thicknessMM float64) float64 {
	if thicknessMM <= 0 {
		return FloorPenaltyUValue
	}
	return InsulationConductivity / (thicknessMM / 1000)
}

// infiltrationLoad converts daily air exchange into continuous watts.
// Air change count = a fixed baseline plus an increment per door opening.
func infiltrationLoad(p models.RoomParameters, volume, deltaT float64) float64 {
	airChanges := BaseAirChangesPerDay + AirChangesPerDoorOpening*p.DoorOpenings
	energyPerDay := volume * airChanges * airDensity(p.StorageTemp) * AirSpecificHeat * deltaT
	return math.Max(energyPerDay/secondsPerDay, 0)
}

// productLoad is the average wattage to pull the daily throughput from entry
// temperature down to storage temperature within the cooling window.
func productLoad(p models.RoomParameters) float64 {
	deltaT := math.Max(p.EntryTemp-p.StorageTemp, 0)
	if p.DailyLoad <= 0 || deltaT == 0 {
		return 0
	}
	hours := p.CoolingHours
	if hours <= 0 {
		hours = 24
	}
	energy := p.DailyLoad * ProductSpecificHeat(p.Product) * deltaT
	return energy / (hours * secondsPerHour)
}

// equipmentLoad estimates evaporator fans by volume and lighting by floor
// area, with a small/large room split for the fan figure.
func equipmentLoad(volume, floorArea float64) float64 {
	fanPerVolume := FanPowerLargeRoom
	if volume < SmallRoomVolumeThreshold {
		fanPerVolume = FanPowerSmallRoom
	}
	return volume*fanPerVolume + floorArea*LightingPower
}

// humidityFactor prefers an explicit override from the parameter set and
// otherwise looks up the humidity level table.
func humidityFactor(p models.RoomParameters) float64 {
	if p.HumidityFactor > 0 {
		return p.HumidityFactor
	}
	return HumidityMultiplier(p.Humidity)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
