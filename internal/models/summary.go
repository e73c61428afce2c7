package models

// MedicationAdherence is the locally computed adherence figure for one
// medication over the summary window.
type MedicationAdherence struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"` // rounded to one decimal
	DaysTaken  int     `json:"days_taken"`
	DaysLogged int     `json:"days_logged"`
}

// SymptomStats aggregates one symptom's severities over the summary window.
type SymptomStats struct {
	Average float64 `json:"average"` // rounded to one decimal
	Max     int     `json:"max"`
	Entries int     `json:"entries"`
}

// SummaryStats is the aggregate snapshot sent to the summary generator.
// All figures are computed locally from the raw logs; averages are nil
// when no log carried the underlying field.
type SummaryStats struct {
	TotalLogs        int                           `json:"total_logs"`
	AvgSleepHours    *float64                      `json:"avg_sleep_hours"`
	AvgMoodScore     *float64                      `json:"avg_mood_score"`
	AvgWaterOz       *float64                      `json:"avg_water_oz"`
	Adherence        map[string]MedicationAdherence `json:"adherence"` // keyed by medication name
	SymptomAverages  map[string]SymptomStats       `json:"symptom_averages"`
	ActivityCounts   map[string]int                `json:"activity_counts"`
	LifestyleTotals  map[string]int                `json:"lifestyle_totals"`
	SideEffectCounts map[string]map[string]int     `json:"side_effect_counts"` // medication name -> side effect -> days
}

// SummaryAdherenceNote is one adherence line in the generated summary.
type SummaryAdherenceNote struct {
	Medication string  `json:"medication"`
	Percentage float64 `json:"percentage"`
	DaysTaken  int     `json:"days_taken"`
	DaysLogged int     `json:"days_logged"`
	Notes      string  `json:"notes"`
}

// SummaryPattern is one pattern finding in the generated summary.
type SummaryPattern struct {
	Finding      string `json:"finding"`
	Significance string `json:"significance"`
}

// DoctorSummary is the structured summary produced by the upstream
// generator. This service displays its fields and attaches the locally
// computed adherence figures; it never edits the narrative content.
type DoctorSummary struct {
	ExecutiveSummary string                         `json:"executive_summary"`
	Adherence        []SummaryAdherenceNote         `json:"adherence"`
	Patterns         []SummaryPattern               `json:"patterns"`
	LifestyleNotes   []string                       `json:"lifestyle_notes"`
	DiscussionItems  []string                       `json:"discussion_items"`
	AdherenceData    map[string]MedicationAdherence `json:"adherence_data,omitempty"`
}
