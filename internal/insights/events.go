package insights

import (
	"fmt"

	"github.com/carelog/backend/internal/models"
)

// lowSleepThresholdHours flags nights under five hours.
const lowSleepThresholdHours = 5.0

// symptomSpikeSeverity flags any symptom at or above this severity.
const symptomSpikeSeverity = 7

// ExtractEventMarkers derives discrete calendar-day events from the log
// collection. The five conditions are evaluated independently per day, so
// a single day can emit up to five markers, but never more than one of
// the same type. Output is sorted ascending by date.
func ExtractEventMarkers(logs []models.DailyLog) []models.EventMarker {
	type dayKey struct {
		date string
		typ  models.EventMarkerType
	}
	seen := make(map[dayKey]bool)
	markers := make([]models.EventMarker, 0)

	add := func(date string, typ models.EventMarkerType, label string) {
		key := dayKey{date, typ}
		if seen[key] {
			return
		}
		seen[key] = true
		markers = append(markers, models.EventMarker{Date: date, Type: typ, Label: label})
	}

	for _, log := range sortLogsByDate(logs) {
		missed := 0
		for _, entry := range log.MedicationsTaken {
			if !entry.Taken {
				missed++
			}
		}
		if missed > 0 {
			label := fmt.Sprintf("%d missed dose", missed)
			if missed > 1 {
				label += "s"
			}
			add(log.Date, models.EventMissedDose, label)
		}

		if log.Lifestyle != nil {
			if log.Lifestyle.Alcohol {
				add(log.Date, models.EventAlcohol, "Alcohol")
			}
			if log.Lifestyle.Smoked {
				add(log.Date, models.EventSmoked, "Smoked")
			}
		}

		if log.SleepHours != nil && *log.SleepHours < lowSleepThresholdHours {
			add(log.Date, models.EventLowSleep, fmt.Sprintf("%vh sleep", *log.SleepHours))
		}

		worst := 0
		worstName := ""
		for _, symptom := range log.Symptoms {
			if symptom.Severity >= symptomSpikeSeverity && symptom.Severity > worst {
				worst = symptom.Severity
				worstName = symptom.Name
			}
		}
		if worst > 0 {
			add(log.Date, models.EventSymptomSpike, fmt.Sprintf("%s %d/10", worstName, worst))
		}
	}

	return markers
}
