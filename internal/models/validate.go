package models

import (
	"fmt"
	"time"
)

// DayFormat is the calendar-date layout used throughout the service.
const DayFormat = "2006-01-02"

// ValidateDay checks that a string is a well-formed "YYYY-MM-DD" date.
func ValidateDay(s string) error {
	if _, err := time.Parse(DayFormat, s); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	return nil
}

func validSeverity(v int) bool {
	return v >= 1 && v <= 10
}

// Validate checks a DailyLog fetched from the upstream API against the
// shapes the insight computations assume. The core packages never see a
// log that failed this check.
func (l *DailyLog) Validate() error {
	if err := ValidateDay(l.Date); err != nil {
		return fmt.Errorf("daily log %d: %w", l.ID, err)
	}
	for _, symptom := range l.Symptoms {
		if symptom.Name == "" {
			return fmt.Errorf("daily log %d: symptom with empty name", l.ID)
		}
		if !validSeverity(symptom.Severity) {
			return fmt.Errorf("daily log %d: symptom %q severity %d out of range", l.ID, symptom.Name, symptom.Severity)
		}
	}
	for _, medSE := range l.MedicationSideEffects {
		for _, se := range medSE.SideEffects {
			if !validSeverity(se.Severity) {
				return fmt.Errorf("daily log %d: side effect %q severity %d out of range", l.ID, se.Name, se.Severity)
			}
		}
	}
	if l.SleepHours != nil && (*l.SleepHours < 0 || *l.SleepHours > 24) {
		return fmt.Errorf("daily log %d: sleep_hours %.1f out of range", l.ID, *l.SleepHours)
	}
	if l.MoodScore != nil && !validSeverity(*l.MoodScore) {
		return fmt.Errorf("daily log %d: mood_score %d out of range", l.ID, *l.MoodScore)
	}
	if l.WaterIntakeOz != nil && *l.WaterIntakeOz < 0 {
		return fmt.Errorf("daily log %d: negative water_intake_oz", l.ID)
	}
	return nil
}
