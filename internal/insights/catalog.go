package insights

import (
	"fmt"
	"time"

	"github.com/carelog/backend/internal/models"
)

// MetricDef describes one trackable metric: how to extract its series and
// how to present it. The detail view resolves a row key back to its
// definition to recompute a fresh series on demand.
type MetricDef struct {
	Key            string
	Label          string
	Unit           models.Unit
	HigherIsBetter bool
	Color          string
	Extract        func(logs []models.DailyLog) []models.MetricPoint
}

// Stable metric keys. Per-medication rows use MedicationKey.
const (
	KeyAgitation  = "agitation"
	KeyMoodSwings = "mood_swings"
	KeyConfusion  = "confusion"
	KeyMood       = "mood"
	KeySleep      = "sleep"
	KeyWater      = "water"
	KeySmoked     = "smoked"
	KeyAlcohol    = "alcohol"
	KeyAdherence  = "adherence"
)

// MedicationKey builds the row key for one medication's adherence series.
func MedicationKey(medicationID int) string {
	return fmt.Sprintf("med:%d", medicationID)
}

func smokedSeries(logs []models.DailyLog) []models.MetricPoint {
	return LifestyleSeries(logs, FlagSmoked)
}

// baseMetricDefs is the fixed catalog order for non-medication metrics.
var baseMetricDefs = []MetricDef{
	{Key: KeyAgitation, Label: SymptomAgitation, Unit: models.UnitSeverity, HigherIsBetter: false, Color: "#ef4444", Extract: agitationSeries},
	{Key: KeyMoodSwings, Label: SymptomMoodSwings, Unit: models.UnitSeverity, HigherIsBetter: false, Color: "#f59e0b", Extract: moodSwingsSeries},
	{Key: KeyConfusion, Label: SymptomConfusion, Unit: models.UnitSeverity, HigherIsBetter: false, Color: "#8b5cf6", Extract: confusionSeries},
	{Key: KeyMood, Label: "Mood Score", Unit: models.UnitSeverity, HigherIsBetter: true, Color: "#ec4899", Extract: MoodSeries},
	{Key: KeySleep, Label: "Sleep", Unit: models.UnitHours, HigherIsBetter: true, Color: "#3b82f6", Extract: SleepSeries},
	{Key: KeyWater, Label: "Water Intake", Unit: models.UnitOunces, HigherIsBetter: true, Color: "#06b6d4", Extract: WaterSeries},
	{Key: KeySmoked, Label: "Smoked", Unit: models.UnitDays, HigherIsBetter: false, Color: "#6b7280", Extract: smokedSeries},
	{Key: KeyAlcohol, Label: "Alcohol", Unit: models.UnitDays, HigherIsBetter: false, Color: "#a16207", Extract: alcoholSeries},
	{Key: KeyAdherence, Label: "Overall Adherence", Unit: models.UnitPercent, HigherIsBetter: true, Color: "#22c55e", Extract: OverallAdherenceSeries},
}

// medicationDefs builds one definition per active medication.
func medicationDefs(medications []models.Medication) []MetricDef {
	defs := make([]MetricDef, 0, len(medications))
	for _, med := range medications {
		if !med.Active {
			continue
		}
		id := med.ID
		defs = append(defs, MetricDef{
			Key:            MedicationKey(id),
			Label:          med.Name,
			Unit:           models.UnitPercent,
			HigherIsBetter: true,
			Color:          "#10b981",
			Extract: func(logs []models.DailyLog) []models.MetricPoint {
				return MedicationAdherenceSeries(logs, id)
			},
		})
	}
	return defs
}

// MetricDefs returns the full catalog in display order: the fixed metrics
// followed by one adherence metric per active medication.
func MetricDefs(medications []models.Medication) []MetricDef {
	defs := make([]MetricDef, 0, len(baseMetricDefs)+len(medications))
	defs = append(defs, baseMetricDefs...)
	defs = append(defs, medicationDefs(medications)...)
	return defs
}

// LookupMetric resolves a row key back to its definition. Unknown keys
// report ok=false; they are an expected state, not an error.
func LookupMetric(key string, medications []models.Medication) (MetricDef, bool) {
	for _, def := range MetricDefs(medications) {
		if def.Key == key {
			return def, true
		}
	}
	return MetricDef{}, false
}

// everTrue reports whether a 0/1 series contains at least one 1.
func everTrue(points []models.MetricPoint) bool {
	for _, p := range points {
		if p.Value != 0 {
			return true
		}
	}
	return false
}

// BuildMetricRows assembles the listing rows. A metric appears only when
// its extracted series is non-empty, and the smoked/alcohol flags appear
// only once the flag has ever been true — a row of all "No" days carries
// no signal.
func BuildMetricRows(logs []models.DailyLog, medications []models.Medication, now time.Time) []models.MetricRow {
	rows := make([]models.MetricRow, 0)
	for _, def := range MetricDefs(medications) {
		points := def.Extract(logs)
		if len(points) == 0 {
			continue
		}
		if (def.Key == KeySmoked || def.Key == KeyAlcohol) && !everTrue(points) {
			continue
		}
		rows = append(rows, models.MetricRow{
			Key:            def.Key,
			Label:          def.Label,
			Unit:           def.Unit,
			HigherIsBetter: def.HigherIsBetter,
			Color:          def.Color,
			LatestValue:    points[len(points)-1].Value,
			Change7d:       Change7d(points, now),
			Points7d:       FilterTimeframe(points, models.TimeframeWeek, now),
			AllPoints:      points,
		})
	}
	return rows
}
