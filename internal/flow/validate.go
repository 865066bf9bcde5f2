package flow

import (
	"github.com/frigosoft/coldcalc/internal/calc"
	"github.com/frigosoft/coldcalc/internal/i18n"
	"github.com/frigosoft/coldcalc/internal/models"
)

// Outcome is the result of validating an extraction candidate: either a
// typed accepted value or a structured rejection reason. Validation is
// field-local and side-effect-free; it never consults other answers.
type Outcome struct {
	Valid  bool
	Value  models.AnswerValue
	Reason i18n.Key
}

func accept(v models.AnswerValue) Outcome {
	return Outcome{Valid: true, Value: v}
}

func reject(fieldID FieldID) Outcome {
	return Outcome{Reason: i18n.InvalidKey(string(fieldID))}
}

// Per-field bounds.
const (
	maxDimensionMeters = 100.0
	minEntryTemp       = -10.0
	maxEntryTemp       = 90.0
	minAmbientTemp     = -20.0
	maxAmbientTemp     = 60.0
	minInsulationMM    = 50.0
	maxInsulationMM    = 300.0
	maxDailyLoadKG     = 50000.0
	maxDoorOpenings    = 200.0
	maxCoolingHours    = 48.0
	maxUsableAreaM2    = 10000.0
)

// Validate accepts or rejects an extraction candidate for the given field.
func Validate(fieldID FieldID, c Candidate) Outcome {
	if !c.Found {
		return reject(fieldID)
	}

	switch fieldID {
	case FieldDimensions:
		d := c.Value.Dimensions
		if d == nil {
			return reject(fieldID)
		}
		for _, v := range []float64{d.Length, d.Width, d.Height} {
			if v <= 0 || v > maxDimensionMeters {
				return reject(fieldID)
			}
		}
		return accept(c.Value)

	case FieldStorageTemp:
		// Membership in the fixed discrete set; the engine re-checks this
		// as its own invariant at calculate time.
		if !calc.SupportedTemperatures[c.Value.Number] {
			return reject(fieldID)
		}
		return accept(c.Value)

	case FieldEntryTemp:
		return acceptInRange(fieldID, c.Value, minEntryTemp, maxEntryTemp)

	case FieldAmbientTemp:
		return acceptInRange(fieldID, c.Value, minAmbientTemp, maxAmbientTemp)

	case FieldInsulation:
		return acceptInRange(fieldID, c.Value, minInsulationMM, maxInsulationMM)

	case FieldDailyLoad:
		return acceptInRange(fieldID, c.Value, 0, maxDailyLoadKG)

	case FieldDoorOpenings:
		return acceptInRange(fieldID, c.Value, 0, maxDoorOpenings)

	case FieldCoolingHours:
		if c.Value.Number <= 0 || c.Value.Number > maxCoolingHours {
			return reject(fieldID)
		}
		return accept(c.Value)

	case FieldUsableArea:
		if c.Value.Number <= 0 || c.Value.Number > maxUsableAreaM2 {
			return reject(fieldID)
		}
		return accept(c.Value)

	case FieldProductType, FieldCoolingSystem, FieldUnitPreference, FieldElectricity:
		if c.Value.Text == "" {
			return reject(fieldID)
		}
		return accept(c.Value)

	case FieldCity:
		if c.Value.Text == "" {
			return reject(fieldID)
		}
		return accept(c.Value)

	case FieldHeatSources, FieldDrawings:
		if c.Value.Kind != models.ValueKindBool {
			return reject(fieldID)
		}
		return accept(c.Value)

	default:
		return reject(fieldID)
	}
}

func acceptInRange(fieldID FieldID, v models.AnswerValue, min, max float64) Outcome {
	if v.Kind != models.ValueKindNumber || v.Number < min || v.Number > max {
		return reject(fieldID)
	}
	return accept(v)
}
