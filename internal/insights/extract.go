// Package insights contains the pure metric computations for the carelog
// backend: time-series extraction from daily logs, timeframe aggregation,
// event marker derivation, the correlation-based observation engine, and
// the metric catalog. Nothing in this package performs I/O or mutates its
// inputs; every function is total over validated logs and returns fresh
// slices on each call.
package insights

import (
	"math"
	"sort"
	"time"

	"github.com/carelog/backend/internal/models"
)

// Canonical symptom names tracked by the catalog and the observation engine.
const (
	SymptomAgitation  = "Agitation"
	SymptomMoodSwings = "Mood Swings"
	SymptomConfusion  = "Confusion"
)

// LifestyleFlag selects one boolean field of the lifestyle section.
type LifestyleFlag string

const (
	FlagSmoked  LifestyleFlag = "smoked"
	FlagAlcohol LifestyleFlag = "alcohol"
)

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(models.DayFormat, s)
	return t, err == nil
}

func formatDay(t time.Time) string {
	return t.Format(models.DayFormat)
}

// sortPoints orders a series ascending by date. The sort is stable so
// duplicate-date entries keep their log order.
func sortPoints(points []models.MetricPoint) []models.MetricPoint {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// sortLogsByDate returns a date-ascending copy of the logs. Several
// computations want chronological order without touching the caller's
// slice.
func sortLogsByDate(logs []models.DailyLog) []models.DailyLog {
	sorted := make([]models.DailyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// SymptomSeries extracts severity points for one named symptom. Logs that
// do not mention the symptom contribute no point.
func SymptomSeries(logs []models.DailyLog, name string) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(logs))
	for _, log := range logs {
		for _, symptom := range log.Symptoms {
			if symptom.Name == name {
				points = append(points, models.MetricPoint{Date: log.Date, Value: float64(symptom.Severity)})
				break
			}
		}
	}
	return sortPoints(points)
}

// SleepSeries extracts sleep hours. Logs without a sleep figure are
// skipped, never zero-filled.
func SleepSeries(logs []models.DailyLog) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(logs))
	for _, log := range logs {
		if log.SleepHours != nil {
			points = append(points, models.MetricPoint{Date: log.Date, Value: *log.SleepHours})
		}
	}
	return sortPoints(points)
}

// WaterSeries extracts daily water intake in ounces.
func WaterSeries(logs []models.DailyLog) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(logs))
	for _, log := range logs {
		if log.WaterIntakeOz != nil {
			points = append(points, models.MetricPoint{Date: log.Date, Value: *log.WaterIntakeOz})
		}
	}
	return sortPoints(points)
}

// MoodSeries extracts the 1-10 mood score.
func MoodSeries(logs []models.DailyLog) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(logs))
	for _, log := range logs {
		if log.MoodScore != nil {
			points = append(points, models.MetricPoint{Date: log.Date, Value: float64(*log.MoodScore)})
		}
	}
	return sortPoints(points)
}

// LifestyleSeries extracts a 0/1 series for one lifestyle flag. Unlike the
// other extractors, a log with a present lifestyle section always
// contributes a point even when the flag is false; only logs with no
// lifestyle section at all are skipped. That asymmetry is carried over
// from the logging product's observed behavior.
func LifestyleSeries(logs []models.DailyLog, flag LifestyleFlag) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(logs))
	for _, log := range logs {
		if log.Lifestyle == nil {
			continue
		}
		value := 0.0
		switch flag {
		case FlagSmoked:
			if log.Lifestyle.Smoked {
				value = 1
			}
		case FlagAlcohol:
			if log.Lifestyle.Alcohol {
				value = 1
			}
		}
		points = append(points, models.MetricPoint{Date: log.Date, Value: value})
	}
	return sortPoints(points)
}

// MedicationAdherenceSeries extracts a 0/100 series for one medication.
// Days where the medication has no medications_taken entry contribute no
// point.
func MedicationAdherenceSeries(logs []models.DailyLog, medicationID int) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(logs))
	for _, log := range logs {
		for _, entry := range log.MedicationsTaken {
			if entry.MedicationID != medicationID {
				continue
			}
			value := 0.0
			if entry.Taken {
				value = 100
			}
			points = append(points, models.MetricPoint{Date: log.Date, Value: value})
			break
		}
	}
	return sortPoints(points)
}

// OverallAdherenceSeries extracts the taken/total percentage per day,
// rounded to the nearest integer. Days with no medications_taken entries
// contribute no point.
func OverallAdherenceSeries(logs []models.DailyLog) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(logs))
	for _, log := range logs {
		total := len(log.MedicationsTaken)
		if total == 0 {
			continue
		}
		taken := 0
		for _, entry := range log.MedicationsTaken {
			if entry.Taken {
				taken++
			}
		}
		value := math.Round(float64(taken) / float64(total) * 100)
		points = append(points, models.MetricPoint{Date: log.Date, Value: value})
	}
	return sortPoints(points)
}
