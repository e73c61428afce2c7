package chart

import (
	"testing"

	"github.com/carelog/backend/internal/models"
)

func interactionFixture() *Interaction {
	series := []models.MetricPoint{
		point("2024-06-01", 4),
		point("2024-06-02", 6),
		point("2024-06-03", 8),
	}
	markers := []models.EventMarker{
		{Date: "2024-06-01", Type: models.EventLowSleep, Label: "4h sleep"},
		{Date: "2024-06-03", Type: models.EventAlcohol, Label: "Alcohol"},
	}
	return NewInteraction(Build(series, markers, models.UnitHours))
}

func fullBounds() Rect {
	return Rect{Left: 0, Top: 0, Width: Width, Height: Height}
}

func TestInteractionStartsIdle(t *testing.T) {
	in := interactionFixture()
	if in.State() != StateIdle {
		t.Errorf("expected idle, got %q", in.State())
	}
	if in.HoveredPoint() != nil {
		t.Error("expected no hovered point before any move")
	}
	if _, ok := in.CursorX(); ok {
		t.Error("expected no cursor before any move")
	}
}

func TestPointerMoveHoversNearestPoint(t *testing.T) {
	in := interactionFixture()

	// pointer just right of the first point
	in.PointerMove(PadLeft+5, 100, fullBounds())
	if in.State() != StateHovering {
		t.Fatalf("expected hovering, got %q", in.State())
	}
	p := in.HoveredPoint()
	if p == nil || p.Date != "2024-06-01" {
		t.Errorf("expected first point hovered, got %+v", p)
	}

	// pointer at the far right snaps to the last point
	in.PointerMove(Width-1, 100, fullBounds())
	p = in.HoveredPoint()
	if p == nil || p.Date != "2024-06-03" {
		t.Errorf("expected last point hovered, got %+v", p)
	}

	if x, ok := in.CursorX(); !ok || x != p.X {
		t.Errorf("cursor should track the hovered point, got (%v, %v)", x, ok)
	}
}

func TestPointerMoveScalesBounds(t *testing.T) {
	in := interactionFixture()

	// chart rendered at half size, offset on the page: a pointer at the
	// element's horizontal midpoint should land on the middle series point
	bounds := Rect{Left: 100, Top: 50, Width: Width / 2, Height: Height / 2}
	in.PointerMove(100+Width/4, 60, bounds)

	p := in.HoveredPoint()
	if p == nil || p.Date != "2024-06-02" {
		t.Errorf("expected middle point hovered, got %+v", p)
	}
}

func TestPointerMoveIgnoredWithoutData(t *testing.T) {
	in := NewInteraction(Build(nil, nil, models.UnitHours))
	in.PointerMove(300, 100, fullBounds())
	if in.State() != StateIdle {
		t.Errorf("expected idle on NoData chart, got %q", in.State())
	}
}

func TestPointerMoveIgnoredForDegenerateBounds(t *testing.T) {
	in := interactionFixture()
	in.PointerMove(300, 100, Rect{Width: 0, Height: 0})
	if in.State() != StateIdle {
		t.Errorf("expected move ignored for zero bounds, got %q", in.State())
	}
}

func TestPointerLeaveClearsHover(t *testing.T) {
	in := interactionFixture()
	in.PointerMove(300, 100, fullBounds())
	in.PointerLeave()

	if in.State() != StateIdle {
		t.Errorf("expected idle after leave, got %q", in.State())
	}
	if in.HoveredPoint() != nil {
		t.Error("expected hover cleared after leave")
	}
}

func TestClickMarkerSelectsAndToggles(t *testing.T) {
	in := interactionFixture()

	in.ClickMarker("2024-06-01", models.EventLowSleep)
	if in.State() != StateEventSelected {
		t.Fatalf("expected event_selected, got %q", in.State())
	}
	selected := in.SelectedMarker()
	if selected == nil || selected.Marker.Label != "4h sleep" {
		t.Errorf("unexpected selection %+v", selected)
	}

	// clicking the same marker again deselects
	in.ClickMarker("2024-06-01", models.EventLowSleep)
	if in.State() != StateIdle || in.SelectedMarker() != nil {
		t.Errorf("expected deselection back to idle, got %q", in.State())
	}
}

func TestClickMarkerReplacesSelection(t *testing.T) {
	in := interactionFixture()

	in.ClickMarker("2024-06-01", models.EventLowSleep)
	in.ClickMarker("2024-06-03", models.EventAlcohol)

	selected := in.SelectedMarker()
	if selected == nil || selected.Marker.Type != models.EventAlcohol {
		t.Errorf("expected alcohol marker selected, got %+v", selected)
	}
	if in.State() != StateEventSelected {
		t.Errorf("expected event_selected, got %q", in.State())
	}
}

func TestClickMarkerUnknownIsNoOp(t *testing.T) {
	in := interactionFixture()
	in.ClickMarker("2024-06-02", models.EventSmoked)
	if in.State() != StateIdle || in.SelectedMarker() != nil {
		t.Errorf("expected no selection for unknown marker, got %q", in.State())
	}
}

func TestSelectionSurvivesPointerLeave(t *testing.T) {
	in := interactionFixture()
	in.ClickMarker("2024-06-01", models.EventLowSleep)
	in.PointerMove(300, 100, fullBounds())
	in.PointerLeave()

	if in.State() != StateEventSelected {
		t.Errorf("expected selection pinned across leave, got %q", in.State())
	}
	if in.SelectedMarker() == nil {
		t.Error("expected selection retained")
	}
	if in.HoveredPoint() != nil {
		t.Error("expected hover cleared even while selected")
	}
}

func TestDeselectWithActiveHoverReturnsToHovering(t *testing.T) {
	in := interactionFixture()
	in.PointerMove(300, 100, fullBounds())
	in.ClickMarker("2024-06-01", models.EventLowSleep)
	in.ClickMarker("2024-06-01", models.EventLowSleep)

	if in.State() != StateHovering {
		t.Errorf("expected hovering after deselect with pointer on chart, got %q", in.State())
	}
}

func TestHoverTooltipFlipsAtRightEdge(t *testing.T) {
	in := interactionFixture()

	// hover the first point: tooltip sits to the right of it
	in.PointerMove(PadLeft, 100, fullBounds())
	tip, ok := in.HoverTooltip()
	if !ok {
		t.Fatal("expected a tooltip while hovering")
	}
	first := in.HoveredPoint()
	if tip.X != first.X+10 {
		t.Errorf("expected tooltip right of point, got x=%v", tip.X)
	}

	// hover the last point: the default position would clip, so it flips
	in.PointerMove(Width-1, 100, fullBounds())
	tip, ok = in.HoverTooltip()
	if !ok {
		t.Fatal("expected a tooltip while hovering")
	}
	last := in.HoveredPoint()
	if tip.X != last.X-10-tooltipWidth {
		t.Errorf("expected tooltip flipped left of point, got x=%v", tip.X)
	}
	if tip.Date != "2024-06-03" || tip.Value != 8 {
		t.Errorf("unexpected tooltip payload %+v", tip)
	}
}

func TestHoverTooltipAbsentWhenIdle(t *testing.T) {
	in := interactionFixture()
	if _, ok := in.HoverTooltip(); ok {
		t.Error("expected no tooltip while idle")
	}
}
