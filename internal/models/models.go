package models

import "time"

// Patient represents a patient record supplied by the health records API.
type Patient struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	DateOfBirth *string      `json:"date_of_birth,omitempty"`
	Diagnosis   string       `json:"diagnosis"`
	Notes       *string      `json:"notes,omitempty"`
	CaregiverID int          `json:"caregiver_id"`
	Medications []Medication `json:"medications,omitempty"`
}

// Medication represents a prescribed medication for a patient.
// Only active medications are surfaced in metric rows and adherence series.
type Medication struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patient_id"`
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Frequency string `json:"frequency"`
	TimeOfDay string `json:"time_of_day"`
	Active    bool   `json:"active"`
}

// MedicationTaken records whether a single medication was taken on a log day.
type MedicationTaken struct {
	MedicationID int     `json:"medication_id"`
	Taken        bool    `json:"taken"`
	TimeTaken    *string `json:"time_taken,omitempty"` // "HH:MM" 24-hour
}

// SymptomEntry records one named symptom and its severity (1-10) for a day.
type SymptomEntry struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"`
}

// SideEffect records one observed side effect and its severity (1-10).
type SideEffect struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"`
}

// MedicationSideEffect groups side effects observed for one medication.
type MedicationSideEffect struct {
	MedicationID   int          `json:"medication_id"`
	MedicationName string       `json:"medication_name"`
	SideEffects    []SideEffect `json:"side_effects"`
}

// Activity records one activity type logged for a day.
type Activity struct {
	Type            string `json:"type"` // music | art | journaling | brain_stimulating | exercise | outside | other
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
}

// Lifestyle holds the daily lifestyle flags. A nil Lifestyle on a log means
// the caregiver did not fill that section in; a non-nil Lifestyle with all
// flags false means they did and nothing applied. Extraction treats those
// two cases differently.
type Lifestyle struct {
	Smoked   bool `json:"smoked"`
	Alcohol  bool `json:"alcohol"`
	Stressed bool `json:"stressed"`
	AteWell  bool `json:"ate_well"`
}

// DailyLog is one caregiver log entry for a patient on a calendar date.
// Dates are ISO "YYYY-MM-DD" strings. Multiple entries may exist for the
// same date; nothing in this service deduplicates them. All optional
// sections are nullable and logs are read-only once fetched.
type DailyLog struct {
	ID                    int                    `json:"id"`
	PatientID             int                    `json:"patient_id"`
	LoggedBy              int                    `json:"logged_by"`
	Date                  string                 `json:"date"`
	MedicationsTaken      []MedicationTaken      `json:"medications_taken,omitempty"`
	Symptoms              []SymptomEntry         `json:"symptoms,omitempty"`
	MedicationSideEffects []MedicationSideEffect `json:"medication_side_effects,omitempty"`
	SleepHours            *float64               `json:"sleep_hours,omitempty"`
	MoodScore             *int                   `json:"mood_score,omitempty"`
	WaterIntakeOz         *float64               `json:"water_intake_oz,omitempty"`
	Activities            []Activity             `json:"activities,omitempty"`
	Lifestyle             *Lifestyle             `json:"lifestyle,omitempty"`
	Notes                 *string                `json:"notes,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
}
