package flow

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/frigosoft/coldcalc/internal/models"
)

// Candidate is the outcome of field extraction: either one typed candidate
// value or an explicit "no candidate". Extraction never fails with an error;
// the validator turns an absent candidate into a user-facing rejection.
type Candidate struct {
	Found bool
	Value models.AnswerValue
}

func noCandidate() Candidate {
	return Candidate{}
}

func candidate(v models.AnswerValue) Candidate {
	return Candidate{Found: true, Value: v}
}

const numberPattern = `-?\d+(?:[.,]\d+)?`

var (
	volumeRe = regexp.MustCompile(`(?i)(` + numberPattern + `)\s*(?:m3|m³|m\^3|metreküp|metrekup|kübik|kubik|cubic|kubikmeter)`)
	tripleRe = regexp.MustCompile(`(?i)(` + numberPattern + `)\s*(?:m\b|metre|meter)?\s*[x×*]\s*(` + numberPattern + `)\s*(?:m\b|metre|meter)?\s*[x×*]\s*(` + numberPattern + `)`)

	lengthRe = regexp.MustCompile(`(?i)(?:length|uzunluk|boy|länge|laenge)\D{0,12}?(` + numberPattern + `)`)
	widthRe  = regexp.MustCompile(`(?i)(?:width|genişlik|genislik|en|breite)\D{0,12}?(` + numberPattern + `)`)
	heightRe = regexp.MustCompile(`(?i)(?:height|yükseklik|yukseklik|höhe|hoehe)\D{0,12}?(` + numberPattern + `)`)

	degreeRe = regexp.MustCompile(`(` + numberPattern + `)\s*(?:°\s*[cC]?|[dD]erece|[gG]rad\b|[dD]eg(?:ree)?s?\b|[cC]\b)`)
	numberRe = regexp.MustCompile(numberPattern)

	tonRe = regexp.MustCompile(`(?i)\b(?:ton|tons|tonne|tonnen)\b`)
	cmRe  = regexp.MustCompile(`(?i)(` + numberPattern + `)\s*cm\b`)
)

// maxEstimatedHeight caps the isotropic height estimate derived from a bare
// volume answer, in meters.
const maxEstimatedHeight = 3.5

// Extract turns raw user text into a typed candidate for the given field,
// trying the most specific pattern first.
func Extract(fieldID FieldID, lang models.Language, text string) Candidate {
	switch fieldID {
	case FieldDimensions:
		return extractDimensions(text)
	case FieldStorageTemp, FieldEntryTemp, FieldAmbientTemp:
		return extractTemperature(text)
	case FieldProductType:
		return extractCategory(text, productSynonyms, string(models.ProductGeneral))
	case FieldDailyLoad:
		return extractMass(text)
	case FieldInsulation:
		return extractInsulation(text)
	case FieldDoorOpenings:
		return extractDoorOpenings(text)
	case FieldCoolingHours, FieldUsableArea:
		return extractNumber(text)
	case FieldCoolingSystem:
		return extractCategory(text, coolingSystemSynonyms, string(models.CoolingMonoblock))
	case FieldUnitPreference:
		return extractCategory(text, unitMountSynonyms, "wall")
	case FieldElectricity:
		return extractCategory(text, electricitySynonyms, "three-phase")
	case FieldCity:
		return extractCity(text)
	case FieldHeatSources, FieldDrawings:
		return extractYesNo(text)
	default:
		return noCandidate()
	}
}

// extractDimensions tries, in order: an explicit unit-suffixed volume, an
// L x W x H triple, then individually labeled dimensions.
func extractDimensions(text string) Candidate {
	if m := volumeRe.FindStringSubmatch(text); m != nil {
		volume := parseNumber(m[1])
		if volume <= 0 {
			return noCandidate()
		}
		edge := math.Cbrt(volume)
		height := math.Min(edge, maxEstimatedHeight)
		side := math.Sqrt(volume / height)
		return candidate(models.DimensionsValue(models.Dimensions{
			Length: side, Width: side, Height: height,
		}))
	}

	if m := tripleRe.FindStringSubmatch(text); m != nil {
		return candidate(models.DimensionsValue(models.Dimensions{
			Length: parseNumber(m[1]),
			Width:  parseNumber(m[2]),
			Height: parseNumber(m[3]),
		}))
	}

	lm := lengthRe.FindStringSubmatch(text)
	wm := widthRe.FindStringSubmatch(text)
	hm := heightRe.FindStringSubmatch(text)
	if lm != nil && wm != nil && hm != nil {
		return candidate(models.DimensionsValue(models.Dimensions{
			Length: parseNumber(lm[1]),
			Width:  parseNumber(wm[1]),
			Height: parseNumber(hm[1]),
		}))
	}

	return noCandidate()
}

// extractTemperature prefers a signed number attached to a degree marker
// and falls back to a bare signed number.
func extractTemperature(text string) Candidate {
	if m := degreeRe.FindStringSubmatch(text); m != nil {
		return candidate(models.NumberValue(parseNumber(m[1])))
	}
	if m := numberRe.FindString(text); m != "" {
		return candidate(models.NumberValue(parseNumber(m)))
	}
	return noCandidate()
}

// extractMass parses a mass in kg, applying the ton scaling keyword.
func extractMass(text string) Candidate {
	m := numberRe.FindString(text)
	if m == "" {
		return noCandidate()
	}
	value := parseNumber(m)
	if tonRe.MatchString(text) {
		value *= 1000
	}
	return candidate(models.NumberValue(value))
}

// extractInsulation parses a thickness in mm, scaling an explicit cm figure.
func extractInsulation(text string) Candidate {
	if m := cmRe.FindStringSubmatch(text); m != nil {
		return candidate(models.NumberValue(parseNumber(m[1]) * 10))
	}
	m := numberRe.FindString(text)
	if m == "" {
		return noCandidate()
	}
	return candidate(models.NumberValue(parseNumber(m)))
}

// doorBucketCounts maps traffic buckets to openings per day.
var doorBucketCounts = map[string]float64{"low": 15, "medium": 30, "high": 60}

// extractDoorOpenings accepts a numeric count or a traffic bucket word,
// defaulting to the medium bucket when neither matches.
func extractDoorOpenings(text string) Candidate {
	if m := numberRe.FindString(text); m != "" {
		return candidate(models.NumberValue(parseNumber(m)))
	}
	bucket := extractCategory(text, doorTrafficSynonyms, "medium")
	return candidate(models.NumberValue(doorBucketCounts[bucket.Value.Text]))
}

func extractNumber(text string) Candidate {
	if m := numberRe.FindString(text); m != "" {
		return candidate(models.NumberValue(parseNumber(m)))
	}
	return noCandidate()
}

func extractCity(text string) Candidate {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < 2 {
		return noCandidate()
	}
	return candidate(models.TextValue(trimmed))
}

func extractYesNo(text string) Candidate {
	tokens := tokenize(text)
	for _, yes := range []string{"yes", "yeah", "evet", "var", "ja"} {
		if ok, _ := containsTokens(tokens, yes); ok {
			return candidate(models.BoolValue(true))
		}
	}
	for _, no := range []string{"no", "none", "hayır", "hayir", "yok", "nein", "kein", "keine"} {
		if ok, _ := containsTokens(tokens, no); ok {
			return candidate(models.BoolValue(false))
		}
	}
	return noCandidate()
}

// extractCategory matches the text against language-tagged keyword synonym
// lists, first match wins. Absence of any match yields the neutral default
// rather than failure.
func extractCategory(text string, entries []categoryEntry, fallback string) Candidate {
	tokens := tokenize(text)
	for _, entry := range entries {
		for _, syn := range entry.synonyms {
			if ok, _ := containsTokens(tokens, syn); ok {
				return candidate(models.TextValue(entry.name))
			}
		}
	}
	return candidate(models.TextValue(fallback))
}

func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return n
}
