package service

import (
	"context"
	"errors"

	"github.com/carelog/backend/internal/chart"
	"github.com/carelog/backend/internal/models"
)

// ErrMetricNotFound is returned when a metric key resolves to nothing in
// the patient's catalog. Handlers turn it into a 404 problem response.
var ErrMetricNotFound = errors.New("metric not found")

// MetricDetail is the full detail view for one metric: the definition,
// the timeframe-scoped series, its 7-day change, overlaid event markers
// and the laid-out chart geometry.
type MetricDetail struct {
	Key            string               `json:"key"`
	Label          string               `json:"label"`
	Unit           models.Unit          `json:"unit"`
	HigherIsBetter bool                 `json:"higher_is_better"`
	Color          string               `json:"color"`
	Timeframe      models.Timeframe     `json:"timeframe"`
	Points         []models.MetricPoint `json:"points"`
	Change7d       *float64             `json:"change_7d,omitempty"`
	Change         models.ChangeBadge   `json:"change"`
	Markers        []models.EventMarker `json:"markers"`
	Chart          chart.Model          `json:"chart"`
}

// ObservationSet pairs the computed observations with the disclaimer the
// UI must show alongside them.
type ObservationSet struct {
	Observations []models.Observation `json:"observations"`
	Disclaimer   string               `json:"disclaimer"`
}

// InsightsService defines the interface for insight computations over a
// patient's log history
type InsightsService interface {
	GetMetricRows(ctx context.Context, patientID int, userToken string) ([]models.MetricRow, error)
	GetMetricDetail(ctx context.Context, patientID int, key string, tf models.Timeframe, userToken string) (*MetricDetail, error)
	GetObservations(ctx context.Context, patientID int, userToken string) (*ObservationSet, error)
	GetEventMarkers(ctx context.Context, patientID int, userToken string) ([]models.EventMarker, error)
}

// SummaryService defines the interface for doctor-summary generation
type SummaryService interface {
	GenerateSummary(ctx context.Context, patientID int, userToken string) (*models.DoctorSummary, error)
}

// PatientService defines the interface for patient listing and lookup
type PatientService interface {
	ListPatients(ctx context.Context, userToken string) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID int, userToken string) (*models.Patient, error)
}
