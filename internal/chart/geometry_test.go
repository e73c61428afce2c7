package chart

import (
	"math"
	"testing"

	"github.com/carelog/backend/internal/models"
)

func point(date string, value float64) models.MetricPoint {
	return models.MetricPoint{Date: date, Value: value}
}

func TestBuildNoData(t *testing.T) {
	model := Build(nil, nil, models.UnitHours)
	if !model.NoData {
		t.Fatal("expected NoData for empty series")
	}
	if model.Height != PlaceholderHeight {
		t.Errorf("expected placeholder height %v, got %v", PlaceholderHeight, model.Height)
	}
	if len(model.Points) != 0 || len(model.ValueTicks) != 0 || len(model.TimeTicks) != 0 {
		t.Errorf("expected empty geometry, got %+v", model)
	}
	if model.Unit != models.UnitHours {
		t.Errorf("unit not carried through: %q", model.Unit)
	}
}

func TestBuildPaddedRange(t *testing.T) {
	series := []models.MetricPoint{point("2024-06-01", 10), point("2024-06-02", 20)}
	model := Build(series, nil, models.UnitSeverity)

	// span 10 padded by 15% on each side
	if math.Abs(model.MinValue-8.5) > 1e-9 {
		t.Errorf("expected min 8.5, got %v", model.MinValue)
	}
	if math.Abs(model.MaxValue-21.5) > 1e-9 {
		t.Errorf("expected max 21.5, got %v", model.MaxValue)
	}
}

func TestBuildFlatSeriesPad(t *testing.T) {
	series := []models.MetricPoint{point("2024-06-01", 7), point("2024-06-02", 7)}
	model := Build(series, nil, models.UnitHours)

	if model.MinValue != 6 || model.MaxValue != 8 {
		t.Errorf("expected fixed pad around flat series, got [%v, %v]", model.MinValue, model.MaxValue)
	}
}

func TestBuildPointPlacement(t *testing.T) {
	series := []models.MetricPoint{
		point("2024-06-01", 0),
		point("2024-06-02", 5),
		point("2024-06-03", 10),
	}
	model := Build(series, nil, models.UnitSeverity)

	if len(model.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(model.Points))
	}
	if model.Points[0].X != PadLeft {
		t.Errorf("first point should sit at the left inset, got %v", model.Points[0].X)
	}
	if model.Points[2].X != Width-PadRight {
		t.Errorf("last point should sit at the right inset, got %v", model.Points[2].X)
	}
	mid := PadLeft + (Width-PadLeft-PadRight)/2
	if math.Abs(model.Points[1].X-mid) > 1e-9 {
		t.Errorf("middle point should be centered, got %v want %v", model.Points[1].X, mid)
	}
	// higher values sit higher on the canvas (smaller y)
	if !(model.Points[2].Y < model.Points[1].Y && model.Points[1].Y < model.Points[0].Y) {
		t.Errorf("y does not decrease with value: %v %v %v", model.Points[0].Y, model.Points[1].Y, model.Points[2].Y)
	}
}

func TestBuildSinglePointCentered(t *testing.T) {
	model := Build([]models.MetricPoint{point("2024-06-01", 5)}, nil, models.UnitSeverity)

	if len(model.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(model.Points))
	}
	wantX := PadLeft + (Width-PadLeft-PadRight)/2
	if math.Abs(model.Points[0].X-wantX) > 1e-9 {
		t.Errorf("single point not centered: got %v want %v", model.Points[0].X, wantX)
	}
}

func TestBuildValueTicks(t *testing.T) {
	series := []models.MetricPoint{point("2024-06-01", 0), point("2024-06-02", 100)}
	model := Build(series, nil, models.UnitPercent)

	if len(model.ValueTicks) != 3 {
		t.Fatalf("expected exactly 3 value ticks, got %d", len(model.ValueTicks))
	}
	span := model.MaxValue - model.MinValue
	wantValues := []float64{
		model.MinValue + 0.10*span,
		model.MinValue + 0.50*span,
		model.MinValue + 0.90*span,
	}
	for i, want := range wantValues {
		if math.Abs(model.ValueTicks[i].Value-want) > 1e-9 {
			t.Errorf("tick %d: got %v, want %v", i, model.ValueTicks[i].Value, want)
		}
	}
	if model.ValueTicks[1].Label != "50%" {
		t.Errorf("unexpected middle tick label %q", model.ValueTicks[1].Label)
	}
}

func TestBuildTimeTicks(t *testing.T) {
	dense := make([]models.MetricPoint, 30)
	for i := range dense {
		dense[i] = point("2024-06-01", float64(i))
	}

	model := Build(dense, nil, models.UnitSeverity)
	if len(model.TimeTicks) != 4 {
		t.Fatalf("expected 4 time ticks, got %d", len(model.TimeTicks))
	}
	if model.TimeTicks[0].X != model.Points[0].X {
		t.Errorf("first tick should align with first point")
	}
	if model.TimeTicks[3].X != model.Points[29].X {
		t.Errorf("last tick should align with last point")
	}

	sparse := Build([]models.MetricPoint{point("2024-06-01", 1), point("2024-06-02", 2)}, nil, models.UnitSeverity)
	if len(sparse.TimeTicks) != 2 {
		t.Errorf("expected tick per point for sparse series, got %d", len(sparse.TimeTicks))
	}
}

func TestBuildMarkerPlacement(t *testing.T) {
	series := []models.MetricPoint{
		point("2024-06-01", 5),
		point("2024-06-03", 6),
		point("2024-06-11", 7),
	}
	markers := []models.EventMarker{
		{Date: "2024-06-01", Type: models.EventLowSleep, Label: "4h sleep"},
		{Date: "2024-06-06", Type: models.EventAlcohol, Label: "Alcohol"},
		{Date: "2024-06-11", Type: models.EventSmoked, Label: "Smoked"},
		{Date: "2024-05-20", Type: models.EventMissedDose, Label: "1 missed dose"}, // before range
		{Date: "2024-06-15", Type: models.EventMissedDose, Label: "1 missed dose"}, // after range
	}

	model := Build(series, markers, models.UnitHours)
	if len(model.Markers) != 3 {
		t.Fatalf("expected 3 markers inside the range, got %d", len(model.Markers))
	}

	plot := Width - PadLeft - PadRight
	if model.Markers[0].X != PadLeft {
		t.Errorf("range-start marker at %v, want %v", model.Markers[0].X, PadLeft)
	}
	// 2024-06-06 is 5 of 10 days through the range
	if math.Abs(model.Markers[1].X-(PadLeft+plot*0.5)) > 1e-9 {
		t.Errorf("mid-range marker at %v, want %v", model.Markers[1].X, PadLeft+plot*0.5)
	}
	if model.Markers[2].X != Width-PadRight {
		t.Errorf("range-end marker at %v, want %v", model.Markers[2].X, Width-PadRight)
	}

	baseline := Height - PadBottom
	for _, m := range model.Markers {
		if m.Y != baseline {
			t.Errorf("marker %q not on the baseline: %v", m.Marker.Label, m.Y)
		}
	}
}

func TestBuildMarkerSinglePointSeries(t *testing.T) {
	series := []models.MetricPoint{point("2024-06-01", 5)}
	markers := []models.EventMarker{{Date: "2024-06-01", Type: models.EventAlcohol, Label: "Alcohol"}}

	model := Build(series, markers, models.UnitHours)
	if len(model.Markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(model.Markers))
	}
	wantX := PadLeft + (Width-PadLeft-PadRight)/2
	if math.Abs(model.Markers[0].X-wantX) > 1e-9 {
		t.Errorf("zero-span marker not centered: got %v", model.Markers[0].X)
	}
}
