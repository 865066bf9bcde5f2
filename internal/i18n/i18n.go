// Package i18n provides the localized message catalog for coldcalc.
//
// Every user-facing string is keyed by a message key and a language tag.
// Lookup falls back to English when a translation is missing.
package i18n

import (
	"fmt"
	"log/slog"

	"github.com/frigosoft/coldcalc/internal/models"
)

// Key identifies one localized message.
type Key string

// Catalog message keys shared across the flow, formatter, and handler.
const (
	KeyWelcome        Key = "welcome"
	KeyHelp           Key = "help"
	KeyProgress       Key = "progress"
	KeyBackAtStart    Key = "back_at_start"
	KeyEditInvalid    Key = "edit_invalid"
	KeyShowHeader     Key = "show_header"
	KeyShowEmpty      Key = "show_empty"
	KeyRestarted      Key = "restarted"
	KeyCancelled      Key = "cancelled"
	KeyCalcFailed     Key = "calc_failed"
	KeyFallbackHint   Key = "fallback_hint"
	KeyReportTitle    Key = "report_title"
	KeyReportCapacity Key = "report_capacity"
	KeyReportRoom     Key = "report_room"
	KeyReportLoads    Key = "report_loads"
	KeyTransmission   Key = "load_transmission"
	KeyInfiltration   Key = "load_infiltration"
	KeyProduct        Key = "load_product"
	KeyEquipment      Key = "load_equipment"
	KeyDefrost        Key = "load_defrost"
	KeyBaseTotal      Key = "load_base_total"
	KeyCorrectedTotal Key = "load_corrected_total"
	KeyReportFactors  Key = "report_factors"
	KeyReportAdvice   Key = "report_advice"
	KeySystemClass    Key = "system_class"
	KeyCompressor     Key = "compressor_class"
	KeyRefrigerant    Key = "refrigerant"
	KeyPowerRange     Key = "power_range"
	KeyPerVolume      Key = "per_volume"
	KeyPerArea        Key = "per_area"
)

// PromptKey returns the catalog key for a question prompt.
func PromptKey(fieldID string) Key {
	return Key("prompt." + fieldID)
}

// InvalidKey returns the catalog key for a question's rejection text.
func InvalidKey(fieldID string) Key {
	return Key("invalid." + fieldID)
}

// AdviceKey returns the catalog key for an advisory note.
func AdviceKey(note models.AdviceNote) Key {
	return Key("advice." + string(note))
}

// T resolves a message for the given language, falling back to English.
func T(lang models.Language, key Key) string {
	if msgs, ok := catalog[key]; ok {
		if s, ok := msgs[lang]; ok && s != "" {
			return s
		}
		if s, ok := msgs[models.LanguageEnglish]; ok {
			return s
		}
	}
	slog.Warn("i18n missing message", "key", key, "language", lang)
	return string(key)
}

// Tf resolves and formats a message with fmt.Sprintf semantics.
func Tf(lang models.Language, key Key, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}
