// Package flow implements the guided consultation: the question catalog,
// free-text field extraction and validation, navigation commands, and the
// state machine that walks a user through the questions and hands the
// compiled parameters to the calculation engine.
package flow

// FieldID identifies one question/parameter in the catalog.
type FieldID string

// Field identifiers for both catalogs.
const (
	FieldDimensions     FieldID = "dimensions"
	FieldStorageTemp    FieldID = "storage_temperature"
	FieldProductType    FieldID = "product_type"
	FieldDailyLoad      FieldID = "daily_load"
	FieldEntryTemp      FieldID = "entry_temperature"
	FieldAmbientTemp    FieldID = "ambient_temperature"
	FieldInsulation     FieldID = "insulation"
	FieldDoorOpenings   FieldID = "door_openings"
	FieldCoolingHours   FieldID = "cooling_duration"
	FieldCoolingSystem  FieldID = "cooling_system"
	FieldUnitPreference FieldID = "unit_preference"
	FieldElectricity    FieldID = "electricity_type"
	FieldCity           FieldID = "installation_city"
	FieldHeatSources    FieldID = "heat_sources"
	FieldUsableArea     FieldID = "usable_area"
	FieldDrawings       FieldID = "technical_drawings"
)
