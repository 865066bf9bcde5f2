package flow

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/frigosoft/coldcalc/internal/models"
)

// Heuristic defaults applied when compiling parameters.
const (
	defaultSafetyFactor    = 1.10
	defaultDefrostFactor   = 1.20
	defaultExpansionFactor = 1.10
	defaultCoolingHours    = 24.0
	heatSourceAmbientBump  = 3.0
)

// cityClimate maps known installation cities to climate zones. Unknown
// cities fall back to temperate.
var cityClimate = map[string]models.ClimateZone{
	"istanbul": models.ClimateTemperate,
	"ankara":   models.ClimateTemperate,
	"izmir":    models.ClimateHot,
	"antalya":  models.ClimateHot,
	"adana":    models.ClimateHot,
	"mersin":   models.ClimateHot,
	"erzurum":  models.ClimateCold,
	"kars":     models.ClimateCold,
	"berlin":   models.ClimateTemperate,
	"münchen":  models.ClimateTemperate,
	"munich":   models.ClimateTemperate,
	"hamburg":  models.ClimateTemperate,
	"london":   models.ClimateTemperate,
	"dubai":    models.ClimateTropical,
	"doha":     models.ClimateTropical,
	"riyadh":   models.ClimateTropical,
	"baghdad":  models.ClimateTropical,
}

// CompileParameters assembles RoomParameters from a session's answers.
// Fields the catalog never asked, or that were skipped, get the same
// canonical default the skip command would have produced, run through the
// identical extractor/validator pipeline. A default that fails its own
// validation is a programming error and is reported, not papered over.
func CompileParameters(session *models.Session, catalog *Catalog) (models.RoomParameters, error) {
	values := make(map[FieldID]models.AnswerValue, len(catalog.Questions))
	for _, q := range catalog.Questions {
		if a, ok := session.Answers[string(q.ID)]; ok {
			values[q.ID] = a.Value
			continue
		}
		outcome := q.Answer(session.Language, DefaultAnswer(q.ID))
		if !outcome.Valid {
			return models.RoomParameters{}, fmt.Errorf("default answer for field %s failed validation", q.ID)
		}
		values[q.ID] = outcome.Value
	}
	// Fields outside this catalog still need deterministic values.
	for _, id := range []FieldID{FieldCoolingHours, FieldHeatSources, FieldCity} {
		if _, ok := values[id]; !ok {
			outcome := Validate(id, Extract(id, session.Language, DefaultAnswer(id)))
			if !outcome.Valid {
				return models.RoomParameters{}, fmt.Errorf("default answer for field %s failed validation", id)
			}
			values[id] = outcome.Value
		}
	}

	dims := values[FieldDimensions].Dimensions
	if dims == nil {
		return models.RoomParameters{}, fmt.Errorf("compiled answers missing room dimensions")
	}

	insulation := values[FieldInsulation].Number
	ambient := values[FieldAmbientTemp].Number
	if values[FieldHeatSources].Flag {
		ambient += heatSourceAmbientBump
	}

	params := models.RoomParameters{
		Length:      dims.Length,
		Width:       dims.Width,
		Height:      dims.Height,
		StorageTemp: values[FieldStorageTemp].Number,
		AmbientTemp: ambient,
		EntryTemp:   values[FieldEntryTemp].Number,
		Product:     models.ProductType(values[FieldProductType].Text),
		DailyLoad:   values[FieldDailyLoad].Number,
		// The single insulation question covers walls and ceiling; floor
		// insulation is unknown, so the engine's penalty U-value applies.
		WallInsulation:    insulation,
		CeilingInsulation: insulation,
		FloorInsulation:   0,
		DoorOpenings:      values[FieldDoorOpenings].Number,
		CoolingHours:      values[FieldCoolingHours].Number,
		SafetyFactor:      defaultSafetyFactor,
		DefrostFactor:     defaultDefrostFactor,
		ExpansionFactor:   defaultExpansionFactor,
		Climate:           climateForCity(values[FieldCity].Text),
		Humidity:          models.HumidityNormal,
	}
	if params.CoolingHours <= 0 {
		params.CoolingHours = defaultCoolingHours
	}

	slog.Debug("CompileParameters assembled parameter set",
		"user", session.UserID,
		"catalog", catalog.Name,
		"storage_temp", params.StorageTemp,
		"volume", params.Volume())
	return params, nil
}

func climateForCity(city string) models.ClimateZone {
	if zone, ok := cityClimate[strings.ToLower(strings.TrimSpace(city))]; ok {
		return zone
	}
	return models.ClimateTemperate
}
