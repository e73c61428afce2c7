package chart

import (
	"math"

	"github.com/carelog/backend/internal/models"
)

// State is the interaction state of one chart instance.
type State string

const (
	// StateIdle draws only the line, fill, axes and event dots.
	StateIdle State = "idle"
	// StateHovering adds a tracking cursor line, a highlighted point and
	// a value/date tooltip for the nearest series point.
	StateHovering State = "hovering"
	// StateEventSelected pins a detail tooltip to one event marker.
	StateEventSelected State = "event_selected"
)

// Rect is the chart element's rendered bounding box in real pixels.
// Pointer coordinates arrive in this space and are converted into the
// virtual space before any distance math runs.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// tooltipWidth is the virtual-space width reserved for the hover
// tooltip when deciding which side of the cursor it renders on.
const tooltipWidth = 120.0

// Tooltip describes the hover tooltip anchored near the highlighted
// point, shifted left when it would clip the right edge.
type Tooltip struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Interaction tracks pointer state for a single chart instance. It is
// not shared across charts; each rendered chart owns one.
type Interaction struct {
	model Model

	state      State
	hoverIndex int
	selected   *MarkerPos
}

// NewInteraction creates an idle interaction for a laid-out chart.
func NewInteraction(model Model) *Interaction {
	return &Interaction{model: model, state: StateIdle, hoverIndex: -1}
}

// State reports the current interaction state.
func (in *Interaction) State() State { return in.state }

// PointerMove converts a real pointer position into virtual space and
// tracks the nearest series point by horizontal distance. Moves are
// ignored while the chart has no data or the bounding box is degenerate.
// A selected event marker keeps its tooltip; hover tracking still
// follows the pointer underneath it.
func (in *Interaction) PointerMove(px, py float64, bounds Rect) {
	if in.model.NoData || len(in.model.Points) == 0 {
		return
	}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	vx := (px - bounds.Left) / bounds.Width * Width

	nearest := 0
	best := math.Abs(in.model.Points[0].X - vx)
	for i, p := range in.model.Points[1:] {
		d := math.Abs(p.X - vx)
		if d < best {
			best = d
			nearest = i + 1
		}
	}
	in.hoverIndex = nearest
	if in.selected == nil {
		in.state = StateHovering
	}
}

// PointerLeave clears hover tracking. A pinned event tooltip survives
// the pointer leaving the chart.
func (in *Interaction) PointerLeave() {
	in.hoverIndex = -1
	if in.selected == nil {
		in.state = StateIdle
	}
}

// ClickMarker toggles the detail tooltip for one (date, type) marker.
// Clicking the selected marker again deselects it; clicking a different
// marker replaces the selection, so at most one event tooltip is ever
// visible.
func (in *Interaction) ClickMarker(date string, markerType models.EventMarkerType) {
	if in.model.NoData {
		return
	}

	if in.selected != nil && in.selected.Marker.Date == date && in.selected.Marker.Type == markerType {
		in.selected = nil
		if in.hoverIndex >= 0 {
			in.state = StateHovering
		} else {
			in.state = StateIdle
		}
		return
	}

	for i := range in.model.Markers {
		m := in.model.Markers[i]
		if m.Marker.Date == date && m.Marker.Type == markerType {
			in.selected = &m
			in.state = StateEventSelected
			return
		}
	}
}

// SelectedMarker returns the pinned event marker, or nil.
func (in *Interaction) SelectedMarker() *MarkerPos { return in.selected }

// HoveredPoint returns the series point under the cursor, or nil when
// nothing is hovered.
func (in *Interaction) HoveredPoint() *PointPos {
	if in.hoverIndex < 0 || in.hoverIndex >= len(in.model.Points) {
		return nil
	}
	p := in.model.Points[in.hoverIndex]
	return &p
}

// CursorX returns the x of the tracking cursor line and whether one
// should be drawn.
func (in *Interaction) CursorX() (float64, bool) {
	p := in.HoveredPoint()
	if p == nil {
		return 0, false
	}
	return p.X, true
}

// HoverTooltip positions the value/date tooltip beside the highlighted
// point, flipping to the left of the cursor when the default position
// would clip the chart's right edge.
func (in *Interaction) HoverTooltip() (Tooltip, bool) {
	p := in.HoveredPoint()
	if p == nil {
		return Tooltip{}, false
	}

	x := p.X + 10
	if x+tooltipWidth > Width-PadRight {
		x = p.X - 10 - tooltipWidth
	}
	if x < PadLeft {
		x = PadLeft
	}
	return Tooltip{X: x, Y: p.Y, Date: p.Date, Value: p.Value}, true
}
