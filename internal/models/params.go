// Package models defines the engineering parameter set and calculation
// result structures shared between the flow controller, the calculation
// engine, and the HTTP API.
package models

import "fmt"

// ProductType enumerates stored product categories. Unrecognized input
// falls back to ProductGeneral rather than failing.
type ProductType string

const (
	ProductGeneral   ProductType = "general"
	ProductMeat      ProductType = "meat"
	ProductFish      ProductType = "fish"
	ProductDairy     ProductType = "dairy"
	ProductFruit     ProductType = "fruit"
	ProductVegetable ProductType = "vegetable"
	ProductBeverage  ProductType = "beverage"
)

// ClimateZone enumerates installation climate zones. Unrecognized zones
// are treated as temperate by the calculation engine.
type ClimateZone string

const (
	ClimateCold      ClimateZone = "cold"
	ClimateTemperate ClimateZone = "temperate"
	ClimateHot       ClimateZone = "hot"
	ClimateTropical  ClimateZone = "tropical"
)

// HumidityLevel enumerates ambient humidity classes.
type HumidityLevel string

const (
	HumidityLow    HumidityLevel = "low"
	HumidityNormal HumidityLevel = "normal"
	HumidityHigh   HumidityLevel = "high"
)

// CoolingSystemType enumerates requested equipment arrangements from the
// extended question catalog.
type CoolingSystemType string

const (
	CoolingMonoblock CoolingSystemType = "monoblock"
	CoolingSplit     CoolingSystemType = "split"
	CoolingCentral   CoolingSystemType = "central"
)

// RoomParameters is the compiled input to the calculation engine. All fields
// except the temperatures and dimensions carry heuristic defaults, so a
// parameter set compiled from a partially answered flow is still computable.
type RoomParameters struct {
	Length float64 `json:"length_m"`
	Width  float64 `json:"width_m"`
	Height float64 `json:"height_m"`

	StorageTemp float64 `json:"storage_temp_c"`
	AmbientTemp float64 `json:"ambient_temp_c"`
	EntryTemp   float64 `json:"entry_temp_c"`

	Product   ProductType `json:"product"`
	DailyLoad float64     `json:"daily_load_kg"`

	WallInsulation    float64 `json:"wall_insulation_mm"`
	CeilingInsulation float64 `json:"ceiling_insulation_mm"`
	FloorInsulation   float64 `json:"floor_insulation_mm"`

	DoorOpenings float64 `json:"door_openings_per_day"`
	CoolingHours float64 `json:"cooling_hours"`

	SafetyFactor    float64 `json:"safety_factor"`
	DefrostFactor   float64 `json:"defrost_factor"`
	ExpansionFactor float64 `json:"expansion_factor"`

	Climate        ClimateZone   `json:"climate_zone"`
	Humidity       HumidityLevel `json:"humidity"`
	HumidityFactor float64       `json:"humidity_factor,omitempty"`
}

// Volume returns the room volume in cubic meters.
func (p RoomParameters) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// FloorArea returns the floor area in square meters.
func (p RoomParameters) FloorArea() float64 {
	return p.Length * p.Width
}

// DimensionsString renders the room geometry for the result echo.
func (p RoomParameters) DimensionsString() string {
	return fmt.Sprintf("%.1fm x %.1fm x %.1fm", p.Length, p.Width, p.Height)
}

// LoadBreakdown itemizes the heat sources, in watts, rounded to whole watts
// at output time.
type LoadBreakdown struct {
	Transmission   float64 `json:"transmission_w"`
	Infiltration   float64 `json:"infiltration_w"`
	Product        float64 `json:"product_w"`
	Equipment      float64 `json:"equipment_w"`
	Defrost        float64 `json:"defrost_w"`
	BaseTotal      float64 `json:"base_total_w"`
	CorrectedTotal float64 `json:"corrected_total_w"`
}

// AppliedFactors echoes the multiplicative margins used in the calculation.
type AppliedFactors struct {
	Safety    float64 `json:"safety"`
	Defrost   float64 `json:"defrost"`
	Expansion float64 `json:"expansion"`
	Climate   float64 `json:"climate"`
	Humidity  float64 `json:"humidity"`
}

// RoomEcho restates the key inputs alongside the result.
type RoomEcho struct {
	Dimensions  string  `json:"dimensions"`
	Volume      float64 `json:"volume_m3"`
	StorageTemp float64 `json:"storage_temp_c"`
	AmbientTemp float64 `json:"ambient_temp_c"`
}

// AdviceNote keys an advisory string in the recommendation. The formatter
// localizes notes; the engine stays locale-independent.
type AdviceNote string

const (
	AdviceVariableSpeed       AdviceNote = "variable_speed_drives"
	AdviceActiveDefrost       AdviceNote = "active_defrost"
	AdviceMultipleEvaporators AdviceNote = "multiple_evaporators"
	AdviceRedundantCompressor AdviceNote = "redundant_compressor"
)

// Recommendation is the equipment suggestion derived from capacity,
// temperature, and volume breakpoints.
type Recommendation struct {
	SystemClass     string       `json:"system_class"`
	CompressorClass string       `json:"compressor_class"`
	Refrigerant     string       `json:"refrigerant"`
	PowerRange      string       `json:"power_range"`
	Notes           []AdviceNote `json:"notes,omitempty"`
}

// CalculationResult is the immutable output of one capacity calculation.
// Identical inputs always produce an identical result.
type CalculationResult struct {
	TotalCapacityWatts float64        `json:"total_capacity_w"`
	TotalCapacityKW    float64        `json:"total_capacity_kw"`
	LoadPerVolume      float64        `json:"load_per_volume_w_m3"`
	LoadPerArea        float64        `json:"load_per_area_w_m2"`
	Breakdown          LoadBreakdown  `json:"breakdown"`
	Factors            AppliedFactors `json:"applied_factors"`
	Room               RoomEcho       `json:"room"`
	Recommendation     Recommendation `json:"recommendation"`
}
