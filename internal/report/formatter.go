// Package report renders a CalculationResult into a localized,
// human-readable message for the chat transport.
package report

import (
	"fmt"
	"strings"

	"github.com/frigosoft/coldcalc/internal/i18n"
	"github.com/frigosoft/coldcalc/internal/models"
)

// Render formats the full capacity report in the given language.
func Render(lang models.Language, result *models.CalculationResult) string {
	var b strings.Builder

	b.WriteString("❄️ " + i18n.T(lang, i18n.KeyReportTitle) + "\n\n")
	b.WriteString(i18n.Tf(lang, i18n.KeyReportRoom,
		result.Room.Dimensions, result.Room.Volume, result.Room.StorageTemp, result.Room.AmbientTemp))
	b.WriteString("\n\n")
	b.WriteString(i18n.Tf(lang, i18n.KeyReportCapacity,
		result.TotalCapacityWatts, result.TotalCapacityKW))
	b.WriteString("\n")
	b.WriteString(i18n.Tf(lang, i18n.KeyPerVolume, result.LoadPerVolume))
	b.WriteString("\n")
	b.WriteString(i18n.Tf(lang, i18n.KeyPerArea, result.LoadPerArea))
	b.WriteString("\n\n")

	b.WriteString(i18n.T(lang, i18n.KeyReportLoads) + "\n")
	writeLoad(&b, lang, i18n.KeyTransmission, result.Breakdown.Transmission)
	writeLoad(&b, lang, i18n.KeyInfiltration, result.Breakdown.Infiltration)
	writeLoad(&b, lang, i18n.KeyProduct, result.Breakdown.Product)
	writeLoad(&b, lang, i18n.KeyEquipment, result.Breakdown.Equipment)
	writeLoad(&b, lang, i18n.KeyBaseTotal, result.Breakdown.BaseTotal)
	writeLoad(&b, lang, i18n.KeyCorrectedTotal, result.Breakdown.CorrectedTotal)
	writeLoad(&b, lang, i18n.KeyDefrost, result.Breakdown.Defrost)
	b.WriteString("\n")

	b.WriteString(i18n.Tf(lang, i18n.KeyReportFactors,
		result.Factors.Safety, result.Factors.Defrost, result.Factors.Expansion,
		result.Factors.Climate, result.Factors.Humidity))
	b.WriteString("\n\n")

	b.WriteString(i18n.T(lang, i18n.KeyReportAdvice) + "\n")
	rec := result.Recommendation
	fmt.Fprintf(&b, "- %s: %s\n", i18n.T(lang, i18n.KeySystemClass), rec.SystemClass)
	fmt.Fprintf(&b, "- %s: %s\n", i18n.T(lang, i18n.KeyCompressor), rec.CompressorClass)
	fmt.Fprintf(&b, "- %s: %s\n", i18n.T(lang, i18n.KeyRefrigerant), rec.Refrigerant)
	fmt.Fprintf(&b, "- %s: %s\n", i18n.T(lang, i18n.KeyPowerRange), rec.PowerRange)
	for _, note := range rec.Notes {
		fmt.Fprintf(&b, "- %s\n", i18n.T(lang, i18n.AdviceKey(note)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeLoad(b *strings.Builder, lang models.Language, key i18n.Key, watts float64) {
	fmt.Fprintf(b, "- %s: %.0f W\n", i18n.T(lang, key), watts)
}
