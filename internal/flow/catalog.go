package flow

import (
	"github.com/frigosoft/coldcalc/internal/i18n"
	"github.com/frigosoft/coldcalc/internal/models"
)

// Question is one entry of the ordered catalog: its field, position,
// required flag, and the extraction/validation binding.
type Question struct {
	ID       FieldID
	Order    int
	Required bool
}

// Prompt returns the localized question text.
func (q Question) Prompt(lang models.Language) string {
	return i18n.T(lang, i18n.PromptKey(string(q.ID)))
}

// Answer runs the extractor and validator pipeline for this question.
func (q Question) Answer(lang models.Language, text string) Outcome {
	return Validate(q.ID, Extract(q.ID, lang, text))
}

// Catalog is an ordered, immutable list of questions. It is defined once at
// process start and is the flow's authoritative script; it is read-only and
// safe for use across goroutines.
type Catalog struct {
	Name      string
	Questions []Question
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.Questions)
}

// Question returns the question at the given step index.
func (c *Catalog) Question(step int) Question {
	return c.Questions[step]
}

// IndexOf returns the step index of a field, or -1 when the catalog does
// not ask it.
func (c *Catalog) IndexOf(fieldID FieldID) int {
	for i, q := range c.Questions {
		if q.ID == fieldID {
			return i
		}
	}
	return -1
}

func buildCatalog(name string, fields []FieldID, required map[FieldID]bool) *Catalog {
	questions := make([]Question, len(fields))
	for i, f := range fields {
		questions[i] = Question{ID: f, Order: i, Required: required[f]}
	}
	return &Catalog{Name: name, Questions: questions}
}

// StandardCatalog is the eight-question consultation used by the chat bot.
var StandardCatalog = buildCatalog("standard",
	[]FieldID{
		FieldDimensions,
		FieldStorageTemp,
		FieldProductType,
		FieldDailyLoad,
		FieldEntryTemp,
		FieldAmbientTemp,
		FieldInsulation,
		FieldDoorOpenings,
	},
	map[FieldID]bool{
		FieldDimensions:  true,
		FieldStorageTemp: true,
	},
)

// ExtendedCatalog is the longer site-survey variant: the standard questions
// plus installation details. Same engine, same commands, same completion
// path.
var ExtendedCatalog = buildCatalog("extended",
	[]FieldID{
		FieldDimensions,
		FieldStorageTemp,
		FieldProductType,
		FieldDailyLoad,
		FieldEntryTemp,
		FieldAmbientTemp,
		FieldInsulation,
		FieldDoorOpenings,
		FieldCoolingHours,
		FieldCoolingSystem,
		FieldUnitPreference,
		FieldElectricity,
		FieldCity,
		FieldHeatSources,
		FieldUsableArea,
		FieldDrawings,
	},
	map[FieldID]bool{
		FieldDimensions:  true,
		FieldStorageTemp: true,
	},
)

// CatalogByName resolves a stored catalog name back to its instance,
// defaulting to the standard catalog.
func CatalogByName(name string) *Catalog {
	if name == ExtendedCatalog.Name {
		return ExtendedCatalog
	}
	return StandardCatalog
}
