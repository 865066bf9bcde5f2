package flow

// DefaultAnswer returns the canonical default text for a field, used both
// by the skip command and when compiling parameters from a partially
// answered flow. The text is fed through the identical extractor/validator
// pipeline used for real input, so a skipped value can never violate the
// field's own constraints.
func DefaultAnswer(fieldID FieldID) string {
	switch fieldID {
	case FieldDimensions:
		return "5m x 4m x 3m"
	case FieldStorageTemp:
		return "-18°C"
	case FieldProductType:
		return "general"
	case FieldDailyLoad:
		return "1000 kg"
	case FieldEntryTemp:
		return "25°C"
	case FieldAmbientTemp:
		return "35°C"
	case FieldInsulation:
		return "100 mm"
	case FieldDoorOpenings:
		return "medium"
	case FieldCoolingHours:
		return "24 hours"
	case FieldCoolingSystem:
		return "monoblock"
	case FieldUnitPreference:
		return "wall"
	case FieldElectricity:
		return "three-phase"
	case FieldCity:
		return "Istanbul"
	case FieldHeatSources:
		return "no"
	case FieldUsableArea:
		return "20 m2"
	case FieldDrawings:
		return "no"
	default:
		return ""
	}
}
