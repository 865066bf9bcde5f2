package calc

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/frigosoft/coldcalc/internal/models"
)

func baseParams() models.RoomParameters {
	return models.RoomParameters{
		Length:            5,
		Width:             4,
		Height:            3,
		StorageTemp:       -18,
		AmbientTemp:       35,
		EntryTemp:         25,
		Product:           models.ProductGeneral,
		DailyLoad:         1000,
		WallInsulation:    100,
		CeilingInsulation: 100,
		FloorInsulation:   0,
		DoorOpenings:      30,
		CoolingHours:      24,
		SafetyFactor:      1.10,
		DefrostFactor:     1.20,
		ExpansionFactor:   1.10,
		Climate:           models.ClimateTemperate,
		Humidity:          models.HumidityNormal,
	}
}

func TestCalculateSupportedTemperatures(t *testing.T) {
	temps := []float64{12, 5, 0, -5, -15, -18, -20, -25}
	for _, temp := range temps {
		p := baseParams()
		p.StorageTemp = temp
		result, err := Calculate(p)
		if err != nil {
			t.Fatalf("Calculate(%g) unexpected error: %v", temp, err)
		}
		if result.TotalCapacityWatts <= 0 {
			t.Errorf("Calculate(%g) returned non-positive capacity %g", temp, result.TotalCapacityWatts)
		}
	}
}

func TestCalculateUnsupportedTemperature(t *testing.T) {
	for _, temp := range []float64{-10, -30, 7, 100} {
		p := baseParams()
		p.StorageTemp = temp
		_, err := Calculate(p)
		if !errors.Is(err, models.ErrUnsupportedTemperature) {
			t.Errorf("Calculate(%g) error = %v, want ErrUnsupportedTemperature", temp, err)
		}
	}
}

func TestCalculateInvalidDimensions(t *testing.T) {
	p := baseParams()
	p.Height = 0
	_, err := Calculate(p)
	if !errors.Is(err, models.ErrInvalidDimensions) {
		t.Errorf("Calculate with zero height error = %v, want ErrInvalidDimensions", err)
	}
}

func TestCalculateBreakdownSums(t *testing.T) {
	result, err := Calculate(baseParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := result.Breakdown
	sum := b.Transmission + b.Infiltration + b.Product + b.Equipment
	if math.Abs(sum-b.BaseTotal) > 3 {
		t.Errorf("component sum %g differs from base total %g by more than rounding tolerance", sum, b.BaseTotal)
	}
}

func TestCalculateTotalComposition(t *testing.T) {
	p := baseParams()
	result, err := Calculate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (result.Breakdown.CorrectedTotal + result.Breakdown.Defrost) * p.SafetyFactor * p.ExpansionFactor
	if math.Abs(result.TotalCapacityWatts-want) > 5 {
		t.Errorf("total %g does not match (corrected+defrost)*safety*expansion = %g", result.TotalCapacityWatts, want)
	}
	if math.Abs(result.TotalCapacityKW-result.TotalCapacityWatts/1000) > 0.01 {
		t.Errorf("kW figure %g inconsistent with %g W", result.TotalCapacityKW, result.TotalCapacityWatts)
	}
}

func TestCalculateDefrostOnlyAtOrBelowFreezing(t *testing.T) {
	p := baseParams()
	p.StorageTemp = 5
	result, err := Calculate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Breakdown.Defrost != 0 {
		t.Errorf("defrost load %g for +5 degC room, want 0", result.Breakdown.Defrost)
	}

	p.StorageTemp = -18
	result, err = Calculate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Breakdown.Defrost <= 0 {
		t.Errorf("defrost load %g for -18 degC room, want positive", result.Breakdown.Defrost)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	p := baseParams()
	first, err := Calculate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Calculate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}

func TestCalculateClimateCorrection(t *testing.T) {
	temperate := baseParams()
	hot := baseParams()
	hot.Climate = models.ClimateTropical

	rt, err := Calculate(temperate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rh, err := Calculate(hot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rh.TotalCapacityWatts <= rt.TotalCapacityWatts {
		t.Errorf("tropical capacity %g not greater than temperate %g", rh.TotalCapacityWatts, rt.TotalCapacityWatts)
	}
	if rh.Factors.Climate != 1.20 {
		t.Errorf("tropical climate factor = %g, want 1.20", rh.Factors.Climate)
	}
}

func TestCalculateProductLoadZeroWhenEntryBelowStorage(t *testing.T) {
	p := baseParams()
	p.StorageTemp = 5
	p.EntryTemp = 2
	result, err := Calculate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Breakdown.Product != 0 {
		t.Errorf("product load %g for pre-chilled product, want 0", result.Breakdown.Product)
	}
}

func TestCalculateFloorPenaltyApplied(t *testing.T) {
	bare := baseParams()
	insulated := baseParams()
	insulated.FloorInsulation = 100

	rb, err := Calculate(bare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ri, err := Calculate(insulated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rb.Breakdown.Transmission <= ri.Breakdown.Transmission {
		t.Errorf("uninsulated floor transmission %g not greater than insulated %g",
			rb.Breakdown.Transmission, ri.Breakdown.Transmission)
	}
}
