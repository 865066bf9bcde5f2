package i18n

import (
	"strings"
	"testing"

	"github.com/frigosoft/coldcalc/internal/models"
)

func TestTAllLanguages(t *testing.T) {
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageTurkish, models.LanguageGerman} {
		if got := T(lang, KeyWelcome); got == "" || got == string(KeyWelcome) {
			t.Errorf("T(%s, welcome) = %q", lang, got)
		}
	}
}

func TestTFallsBackToEnglish(t *testing.T) {
	got := T(models.Language("fr"), KeyWelcome)
	want := T(models.LanguageEnglish, KeyWelcome)
	if got != want {
		t.Errorf("unknown language lookup = %q, want English fallback %q", got, want)
	}
}

func TestTMissingKeyReturnsKey(t *testing.T) {
	if got := T(models.LanguageEnglish, Key("no.such.key")); got != "no.such.key" {
		t.Errorf("missing key lookup = %q", got)
	}
}

func TestTfProgress(t *testing.T) {
	got := Tf(models.LanguageEnglish, KeyProgress, 3, 8)
	if got != "Question 3 of 8" {
		t.Errorf("Tf progress = %q", got)
	}
}

func TestPromptAndRejectionCoverage(t *testing.T) {
	fields := []string{
		"dimensions", "storage_temperature", "product_type", "daily_load",
		"entry_temperature", "ambient_temperature", "insulation", "door_openings",
		"cooling_duration", "cooling_system", "unit_preference", "electricity_type",
		"installation_city", "heat_sources", "usable_area", "technical_drawings",
	}
	for _, f := range fields {
		for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageTurkish, models.LanguageGerman} {
			if got := T(lang, PromptKey(f)); strings.HasPrefix(got, "prompt.") {
				t.Errorf("missing prompt for field %s in %s", f, lang)
			}
			if got := T(lang, InvalidKey(f)); strings.HasPrefix(got, "invalid.") {
				t.Errorf("missing rejection text for field %s in %s", f, lang)
			}
		}
	}
}

func TestAdviceCoverage(t *testing.T) {
	notes := []models.AdviceNote{
		models.AdviceVariableSpeed,
		models.AdviceActiveDefrost,
		models.AdviceMultipleEvaporators,
		models.AdviceRedundantCompressor,
	}
	for _, n := range notes {
		if got := T(models.LanguageEnglish, AdviceKey(n)); strings.HasPrefix(got, "advice.") {
			t.Errorf("missing advice text for %s", n)
		}
	}
}
