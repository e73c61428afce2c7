package repository

import (
	"context"

	"github.com/carelog/backend/internal/models"
)

// PatientRepository defines the interface for patient data access
type PatientRepository interface {
	List(ctx context.Context, userToken string) ([]models.Patient, error)
	GetByID(ctx context.Context, id int, userToken string) (*models.Patient, error)
}

// DailyLogRepository defines the interface for daily log data access.
// Logs come back validated: the insight computations downstream never
// see malformed dates or out-of-range values.
type DailyLogRepository interface {
	GetByPatientID(ctx context.Context, patientID, days int, userToken string) ([]models.DailyLog, error)
}

// SummaryRepository defines the interface for doctor-summary generation,
// which runs on the upstream health-records API.
type SummaryRepository interface {
	Generate(ctx context.Context, patientID int, stats *models.SummaryStats, userToken string) (*models.DoctorSummary, error)
}
