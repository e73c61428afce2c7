package models

import "fmt"

// Unit tags a metric's value kind. Downstream formatting and
// categorization logic switches on these.
type Unit string

const (
	UnitSeverity Unit = "/10"  // symptom severity and mood score, 1-10
	UnitHours    Unit = "hrs"  // sleep
	UnitOunces   Unit = "oz"   // water intake
	UnitDays     Unit = "days" // boolean lifestyle flags
	UnitPercent  Unit = "%"    // adherence
)

// MetricPoint is the atomic unit of every time series: one value on one
// calendar date ("YYYY-MM-DD"). Every extractor returns points sorted
// ascending by date.
type MetricPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// EventMarkerType is the closed set of discrete calendar-day events
// overlaid on metric charts.
type EventMarkerType string

const (
	EventMissedDose   EventMarkerType = "missed_dose"
	EventAlcohol      EventMarkerType = "alcohol"
	EventSmoked       EventMarkerType = "smoked"
	EventLowSleep     EventMarkerType = "low_sleep"
	EventSymptomSpike EventMarkerType = "symptom_spike"
)

// EventMarker is a dated flag derived from a log day. A single day can
// emit several marker types but never more than one marker per type.
type EventMarker struct {
	Date  string          `json:"date"`
	Type  EventMarkerType `json:"type"`
	Label string          `json:"label"`
}

// MetricRow is a display-ready summary of one metric. Rows are only built
// for metrics whose underlying series is non-empty.
type MetricRow struct {
	Key            string        `json:"key"`
	Label          string        `json:"label"`
	Unit           Unit          `json:"unit"`
	HigherIsBetter bool          `json:"higher_is_better"`
	Color          string        `json:"color"`
	LatestValue    float64       `json:"latest_value"`
	Change7d       *float64      `json:"change_7d"` // nil when either trailing window is empty
	Points7d       []MetricPoint `json:"points_7d"`
	AllPoints      []MetricPoint `json:"all_points"`
}

// Observation is a correlation-backed descriptive statement relating two
// metrics, plus the signed coefficient that produced it. Observations are
// recomputed on every request and never persisted.
type Observation struct {
	Text string  `json:"text"`
	R    float64 `json:"r"`
}

// ChangeDirection classifies a 7-day change for display.
type ChangeDirection string

const (
	ChangeUp      ChangeDirection = "up"
	ChangeDown    ChangeDirection = "down"
	ChangeNeutral ChangeDirection = "neutral"
)

// ChangeTone says whether a change direction is good news for this metric.
type ChangeTone string

const (
	ToneGood    ChangeTone = "good"
	ToneBad     ChangeTone = "bad"
	ToneNeutral ChangeTone = "neutral"
)

// ChangeBadge is the rendered form of a 7-day change figure.
type ChangeBadge struct {
	Text      string          `json:"text"`
	Direction ChangeDirection `json:"direction"`
	Tone      ChangeTone      `json:"tone"`
}

// Timeframe is one of the four fixed lookback windows used to scope chart
// data. Any other value is rejected at the API boundary.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "1W"
	TimeframeMonth   Timeframe = "1M"
	TimeframeQuarter Timeframe = "3M"
	TimeframeYear    Timeframe = "1Y"
)

// ParseTimeframe validates a timeframe tag from a request.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case TimeframeWeek, TimeframeMonth, TimeframeQuarter, TimeframeYear:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("unsupported timeframe %q", s)
}

// Days returns the lookback window length in days.
func (tf Timeframe) Days() int {
	switch tf {
	case TimeframeWeek:
		return 7
	case TimeframeMonth:
		return 30
	case TimeframeQuarter:
		return 90
	case TimeframeYear:
		return 365
	default:
		return 30
	}
}
