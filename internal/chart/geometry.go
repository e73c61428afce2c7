// Package chart lays a metric's time series and event markers out in a
// fixed virtual coordinate space and models the pointer interaction as an
// explicit state machine. The virtual space is independent of rendered
// pixel size: clients scale the geometry to fit and convert real pointer
// coordinates back through the element's bounding box before any
// distance math runs.
package chart

import (
	"github.com/carelog/backend/internal/insights"
	"github.com/carelog/backend/internal/models"
)

// Virtual canvas dimensions and insets. All geometry below is expressed
// in this space.
const (
	Width  = 700.0
	Height = 240.0

	PadLeft   = 46.0
	PadRight  = 14.0
	PadTop    = 18.0
	PadBottom = 26.0

	// PlaceholderHeight is the fixed height of the empty-series state.
	PlaceholderHeight = 120.0

	// valuePadFraction pads the value axis by 15% of the data span so the
	// line never touches the top or bottom edge.
	valuePadFraction = 0.15

	// flatSeriesPad is the pad applied when every value is identical.
	flatSeriesPad = 1.0

	maxTimeTicks = 4
)

// PointPos is one series point placed in virtual space. Series points are
// spaced evenly by index regardless of calendar gaps, which keeps sparse
// data readable.
type PointPos struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MarkerPos is one event marker placed in virtual space. Unlike series
// points, markers are positioned proportionally to elapsed calendar time
// so they line up with real dates even when the series is index-spaced.
type MarkerPos struct {
	X      float64            `json:"x"`
	Y      float64            `json:"y"`
	Marker models.EventMarker `json:"marker"`
}

// ValueTick is one label on the value axis.
type ValueTick struct {
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// TimeTick is one label on the time axis.
type TimeTick struct {
	X    float64 `json:"x"`
	Date string  `json:"date"`
}

// Model is the complete render-ready geometry for one metric chart.
type Model struct {
	Points     []PointPos  `json:"points"`
	Markers    []MarkerPos `json:"markers"`
	ValueTicks []ValueTick `json:"value_ticks"`
	TimeTicks  []TimeTick  `json:"time_ticks"`
	MinValue   float64     `json:"min_value"` // bottom of the padded range
	MaxValue   float64     `json:"max_value"` // top of the padded range
	Unit       models.Unit `json:"unit"`
	NoData     bool        `json:"no_data"`
	Height     float64     `json:"height"`
}

func plotWidth() float64  { return Width - PadLeft - PadRight }
func plotHeight() float64 { return Height - PadTop - PadBottom }

// xForIndex spaces series points evenly across the plot area.
func xForIndex(index, count int) float64 {
	if count <= 1 {
		return PadLeft + plotWidth()/2
	}
	return PadLeft + plotWidth()*float64(index)/float64(count-1)
}

// yForValue maps a value into the padded range, top-down.
func yForValue(value, min, max float64) float64 {
	span := max - min
	if span == 0 {
		return PadTop + plotHeight()/2
	}
	return PadTop + plotHeight()*(1-(value-min)/span)
}

// paddedRange widens the data's value span by 15% on each side, or by a
// fixed pad when the series is flat.
func paddedRange(points []models.MetricPoint) (min, max float64) {
	min, max = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	pad := (max - min) * valuePadFraction
	if pad == 0 {
		pad = flatSeriesPad
	}
	return min - pad, max + pad
}

// Build lays out a metric's series and markers. An empty series yields a
// fixed-height placeholder model with NoData set; callers render a "no
// data" message instead of axes.
func Build(points []models.MetricPoint, markers []models.EventMarker, unit models.Unit) Model {
	if len(points) == 0 {
		return Model{NoData: true, Height: PlaceholderHeight, Unit: unit}
	}

	min, max := paddedRange(points)

	model := Model{
		Points:   make([]PointPos, 0, len(points)),
		Markers:  make([]MarkerPos, 0, len(markers)),
		MinValue: min,
		MaxValue: max,
		Unit:     unit,
		Height:   Height,
	}

	for i, p := range points {
		model.Points = append(model.Points, PointPos{
			X:     xForIndex(i, len(points)),
			Y:     yForValue(p.Value, min, max),
			Date:  p.Date,
			Value: p.Value,
		})
	}

	model.Markers = placeMarkers(points, markers)
	model.ValueTicks = valueTicks(min, max, unit)
	model.TimeTicks = timeTicks(model.Points)
	return model
}

// placeMarkers positions event markers proportionally to elapsed time
// between the series' first and last dates, along the bottom axis.
// Markers outside the series' date range are dropped.
func placeMarkers(points []models.MetricPoint, markers []models.EventMarker) []MarkerPos {
	first, okFirst := insights.ParseDay(points[0].Date)
	last, okLast := insights.ParseDay(points[len(points)-1].Date)
	if !okFirst || !okLast {
		return nil
	}

	span := last.Sub(first)
	baseline := Height - PadBottom
	placed := make([]MarkerPos, 0, len(markers))
	for _, marker := range markers {
		d, ok := insights.ParseDay(marker.Date)
		if !ok || d.Before(first) || d.After(last) {
			continue
		}
		x := PadLeft + plotWidth()/2
		if span > 0 {
			x = PadLeft + plotWidth()*float64(d.Sub(first))/float64(span)
		}
		placed = append(placed, MarkerPos{X: x, Y: baseline, Marker: marker})
	}
	return placed
}

// valueTicks returns exactly three labels, at the 10th, 50th and 90th
// percentile positions of the padded range.
func valueTicks(min, max float64, unit models.Unit) []ValueTick {
	fractions := []float64{0.10, 0.50, 0.90}
	ticks := make([]ValueTick, 0, len(fractions))
	for _, f := range fractions {
		value := min + f*(max-min)
		ticks = append(ticks, ValueTick{
			Y:     yForValue(value, min, max),
			Value: value,
			Label: insights.FormatValue(value, unit),
		})
	}
	return ticks
}

// timeTicks returns up to four labels evenly spaced by index.
func timeTicks(points []PointPos) []TimeTick {
	count := len(points)
	n := maxTimeTicks
	if count < n {
		n = count
	}
	ticks := make([]TimeTick, 0, n)
	for k := 0; k < n; k++ {
		index := 0
		if n > 1 {
			index = k * (count - 1) / (n - 1)
		}
		ticks = append(ticks, TimeTick{X: points[index].X, Date: points[index].Date})
	}
	return ticks
}
