package report

import (
	"strings"
	"testing"

	"github.com/frigosoft/coldcalc/internal/calc"
	"github.com/frigosoft/coldcalc/internal/models"
)

func sampleResult(t *testing.T) *models.CalculationResult {
	t.Helper()
	result, err := calc.Calculate(models.RoomParameters{
		Length: 5, Width: 4, Height: 3,
		StorageTemp: -18, AmbientTemp: 35, EntryTemp: 25,
		Product: models.ProductMeat, DailyLoad: 1000,
		WallInsulation: 100, CeilingInsulation: 100,
		DoorOpenings: 30, CoolingHours: 24,
		SafetyFactor: 1.10, DefrostFactor: 1.20, ExpansionFactor: 1.10,
		Climate: models.ClimateTemperate, Humidity: models.HumidityNormal,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	return result
}

func TestRenderEnglish(t *testing.T) {
	text := Render(models.LanguageEnglish, sampleResult(t))

	for _, want := range []string{
		"❄️",
		"5.0m x 4.0m x 3.0m",
		"Transmission",
		"Infiltration",
		"R404A",
		"kW",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("English report missing %q:\n%s", want, text)
		}
	}
}

func TestRenderTurkish(t *testing.T) {
	text := Render(models.LanguageTurkish, sampleResult(t))
	if !strings.Contains(text, "❄️") {
		t.Error("Turkish report missing title marker")
	}
	if strings.Contains(text, "Transmission") {
		t.Errorf("Turkish report contains untranslated load labels:\n%s", text)
	}
	// The recommendation strings come from the engine and stay constant.
	if !strings.Contains(text, "R404A") {
		t.Errorf("Turkish report missing refrigerant:\n%s", text)
	}
}

func TestRenderIncludesAdviceNotes(t *testing.T) {
	result, err := calc.Calculate(models.RoomParameters{
		Length: 12, Width: 10, Height: 4,
		StorageTemp: -20, AmbientTemp: 40, EntryTemp: 25,
		Product: models.ProductMeat, DailyLoad: 10000,
		WallInsulation: 100, CeilingInsulation: 100,
		DoorOpenings: 60, CoolingHours: 12,
		SafetyFactor: 1.10, DefrostFactor: 1.20, ExpansionFactor: 1.10,
		Climate: models.ClimateHot, Humidity: models.HumidityHigh,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if len(result.Recommendation.Notes) == 0 {
		t.Fatal("large freezer produced no advice notes")
	}
	text := Render(models.LanguageEnglish, result)
	if !strings.Contains(text, "defrost") {
		t.Errorf("report missing localized advice note:\n%s", text)
	}
}
