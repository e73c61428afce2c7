package insights

import (
	"math"

	"github.com/carelog/backend/internal/models"
)

// SummaryWindowDays is the lookback used for doctor summaries.
const SummaryWindowDays = 30

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func mean1(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := round1(sum / float64(len(values)))
	return &avg
}

// BuildSummaryStats aggregates the summary window's logs into the figures
// the doctor summary is generated from: per-medication adherence, sleep,
// mood and water averages, symptom severity stats, activity frequencies,
// lifestyle factor totals, and side-effect occurrence counts. Every
// active medication appears in the adherence map even when it was never
// logged, so the summary can call out untracked prescriptions.
func BuildSummaryStats(logs []models.DailyLog, medications []models.Medication) models.SummaryStats {
	type medTally struct {
		name   string
		taken  int
		logged int
	}
	tallies := make(map[int]*medTally, len(medications))
	for _, med := range medications {
		if med.Active {
			tallies[med.ID] = &medTally{name: med.Name}
		}
	}

	var sleepVals, moodVals, waterVals []float64
	symptomScores := make(map[string][]int)
	activityCounts := make(map[string]int)
	lifestyleTotals := make(map[string]int)
	sideEffectCounts := make(map[string]map[string]int)

	for _, log := range logs {
		for _, entry := range log.MedicationsTaken {
			tally, tracked := tallies[entry.MedicationID]
			if !tracked {
				continue
			}
			tally.logged++
			if entry.Taken {
				tally.taken++
			}
		}

		if log.SleepHours != nil {
			sleepVals = append(sleepVals, *log.SleepHours)
		}
		if log.MoodScore != nil {
			moodVals = append(moodVals, float64(*log.MoodScore))
		}
		if log.WaterIntakeOz != nil {
			waterVals = append(waterVals, *log.WaterIntakeOz)
		}

		for _, symptom := range log.Symptoms {
			symptomScores[symptom.Name] = append(symptomScores[symptom.Name], symptom.Severity)
		}
		for _, activity := range log.Activities {
			activityCounts[activity.Type]++
		}
		for _, medSE := range log.MedicationSideEffects {
			counts := sideEffectCounts[medSE.MedicationName]
			if counts == nil {
				counts = make(map[string]int)
				sideEffectCounts[medSE.MedicationName] = counts
			}
			for _, se := range medSE.SideEffects {
				counts[se.Name]++
			}
		}
		if log.Lifestyle != nil {
			if log.Lifestyle.Smoked {
				lifestyleTotals["smoked"]++
			}
			if log.Lifestyle.Alcohol {
				lifestyleTotals["alcohol"]++
			}
			if log.Lifestyle.Stressed {
				lifestyleTotals["stressed"]++
			}
			if log.Lifestyle.AteWell {
				lifestyleTotals["ate_well"]++
			}
		}
	}

	adherence := make(map[string]models.MedicationAdherence, len(tallies))
	for _, tally := range tallies {
		percentage := 0.0
		if tally.logged > 0 {
			percentage = round1(float64(tally.taken) / float64(tally.logged) * 100)
		}
		adherence[tally.name] = models.MedicationAdherence{
			Name:       tally.name,
			Percentage: percentage,
			DaysTaken:  tally.taken,
			DaysLogged: tally.logged,
		}
	}

	symptomAverages := make(map[string]models.SymptomStats, len(symptomScores))
	for name, scores := range symptomScores {
		sum, max := 0, 0
		for _, s := range scores {
			sum += s
			if s > max {
				max = s
			}
		}
		symptomAverages[name] = models.SymptomStats{
			Average: round1(float64(sum) / float64(len(scores))),
			Max:     max,
			Entries: len(scores),
		}
	}

	return models.SummaryStats{
		TotalLogs:        len(logs),
		AvgSleepHours:    mean1(sleepVals),
		AvgMoodScore:     mean1(moodVals),
		AvgWaterOz:       mean1(waterVals),
		Adherence:        adherence,
		SymptomAverages:  symptomAverages,
		ActivityCounts:   activityCounts,
		LifestyleTotals:  lifestyleTotals,
		SideEffectCounts: sideEffectCounts,
	}
}
