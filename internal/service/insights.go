package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carelog/backend/internal/chart"
	"github.com/carelog/backend/internal/insights"
	"github.com/carelog/backend/internal/models"
	"github.com/carelog/backend/internal/repository"
)

// logFetchWindowDays covers the widest timeframe (1Y) so one fetch
// serves every insight computation.
const logFetchWindowDays = 365

type insightsService struct {
	logRepo     repository.DailyLogRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

// NewInsightsService creates a new insights service
func NewInsightsService(logRepo repository.DailyLogRepository, patientRepo repository.PatientRepository) InsightsService {
	return &insightsService{
		logRepo:     logRepo,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

// fetch loads the patient (for its medication list) and the log snapshot
// every computation below runs over.
func (s *insightsService) fetch(ctx context.Context, patientID int, userToken string) (*models.Patient, []models.DailyLog, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID, userToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch patient: %w", err)
	}

	logs, err := s.logRepo.GetByPatientID(ctx, patientID, logFetchWindowDays, userToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch logs: %w", err)
	}

	return patient, logs, nil
}

func (s *insightsService) GetMetricRows(ctx context.Context, patientID int, userToken string) ([]models.MetricRow, error) {
	patient, logs, err := s.fetch(ctx, patientID, userToken)
	if err != nil {
		return nil, err
	}

	return insights.BuildMetricRows(logs, patient.Medications, s.now()), nil
}

func (s *insightsService) GetMetricDetail(ctx context.Context, patientID int, key string, tf models.Timeframe, userToken string) (*MetricDetail, error) {
	patient, logs, err := s.fetch(ctx, patientID, userToken)
	if err != nil {
		return nil, err
	}

	def, ok := insights.LookupMetric(key, patient.Medications)
	if !ok {
		return nil, ErrMetricNotFound
	}

	all := def.Extract(logs)
	points := insights.AggregateWeekly(insights.FilterTimeframe(all, tf, s.now()))
	change := insights.Change7d(all, s.now())
	markers := insights.ExtractEventMarkers(logs)

	return &MetricDetail{
		Key:            def.Key,
		Label:          def.Label,
		Unit:           def.Unit,
		HigherIsBetter: def.HigherIsBetter,
		Color:          def.Color,
		Timeframe:      tf,
		Points:         points,
		Change7d:       change,
		Change:         insights.FormatChange(change, def.Unit, def.HigherIsBetter),
		Markers:        markers,
		Chart:          chart.Build(points, markers, def.Unit),
	}, nil
}

func (s *insightsService) GetObservations(ctx context.Context, patientID int, userToken string) (*ObservationSet, error) {
	logs, err := s.logRepo.GetByPatientID(ctx, patientID, logFetchWindowDays, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}

	return &ObservationSet{
		Observations: insights.ComputeObservations(logs),
		Disclaimer:   insights.ObservationDisclaimer,
	}, nil
}

func (s *insightsService) GetEventMarkers(ctx context.Context, patientID int, userToken string) ([]models.EventMarker, error) {
	logs, err := s.logRepo.GetByPatientID(ctx, patientID, logFetchWindowDays, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}

	return insights.ExtractEventMarkers(logs), nil
}
