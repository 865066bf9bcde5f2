package flow

import (
	"testing"

	"github.com/frigosoft/coldcalc/internal/i18n"
	"github.com/frigosoft/coldcalc/internal/models"
)

func TestValidateStorageTemperatureMembership(t *testing.T) {
	for _, temp := range []float64{12, 5, 0, -5, -15, -18, -20, -25} {
		o := Validate(FieldStorageTemp, Candidate{Found: true, Value: models.NumberValue(temp)})
		if !o.Valid {
			t.Errorf("supported temperature %g rejected", temp)
		}
	}
	for _, temp := range []float64{-10, -17, 3, 20} {
		o := Validate(FieldStorageTemp, Candidate{Found: true, Value: models.NumberValue(temp)})
		if o.Valid {
			t.Errorf("unsupported temperature %g accepted", temp)
		}
	}
}

func TestValidateDimensions(t *testing.T) {
	good := models.DimensionsValue(models.Dimensions{Length: 5, Width: 4, Height: 3})
	if o := Validate(FieldDimensions, Candidate{Found: true, Value: good}); !o.Valid {
		t.Error("valid dimensions rejected")
	}

	bad := []models.Dimensions{
		{Length: 0, Width: 4, Height: 3},
		{Length: 5, Width: -1, Height: 3},
		{Length: 5, Width: 4, Height: 150},
	}
	for _, d := range bad {
		o := Validate(FieldDimensions, Candidate{Found: true, Value: models.DimensionsValue(d)})
		if o.Valid {
			t.Errorf("invalid dimensions %+v accepted", d)
		}
	}
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		field FieldID
		value float64
		valid bool
	}{
		{FieldEntryTemp, 25, true},
		{FieldEntryTemp, 95, false},
		{FieldAmbientTemp, 35, true},
		{FieldAmbientTemp, -30, false},
		{FieldInsulation, 100, true},
		{FieldInsulation, 40, false},
		{FieldInsulation, 400, false},
		{FieldDailyLoad, 1000, true},
		{FieldDailyLoad, 60000, false},
		{FieldDoorOpenings, 30, true},
		{FieldDoorOpenings, 500, false},
		{FieldCoolingHours, 24, true},
		{FieldCoolingHours, 0, false},
		{FieldUsableArea, 20, true},
		{FieldUsableArea, 20000, false},
	}
	for _, tc := range cases {
		o := Validate(tc.field, Candidate{Found: true, Value: models.NumberValue(tc.value)})
		if o.Valid != tc.valid {
			t.Errorf("Validate(%s, %g) valid = %v, want %v", tc.field, tc.value, o.Valid, tc.valid)
		}
	}
}

func TestValidateNoCandidate(t *testing.T) {
	o := Validate(FieldDimensions, Candidate{})
	if o.Valid {
		t.Fatal("absent candidate accepted")
	}
	if o.Reason != i18n.InvalidKey(string(FieldDimensions)) {
		t.Errorf("rejection reason = %s, want %s", o.Reason, i18n.InvalidKey(string(FieldDimensions)))
	}
}

func TestValidateYesNoKind(t *testing.T) {
	if o := Validate(FieldHeatSources, Candidate{Found: true, Value: models.BoolValue(true)}); !o.Valid {
		t.Error("bool candidate rejected")
	}
	if o := Validate(FieldHeatSources, Candidate{Found: true, Value: models.NumberValue(1)}); o.Valid {
		t.Error("numeric candidate accepted for yes/no field")
	}
}

func TestValidateDefaultAnswers(t *testing.T) {
	// Every default must survive its own field's pipeline; skip and
	// parameter compilation both depend on this.
	for _, catalog := range []*Catalog{StandardCatalog, ExtendedCatalog} {
		for _, q := range catalog.Questions {
			o := Validate(q.ID, Extract(q.ID, models.LanguageEnglish, DefaultAnswer(q.ID)))
			if !o.Valid {
				t.Errorf("default answer %q for field %s failed validation", DefaultAnswer(q.ID), q.ID)
			}
		}
	}
}
