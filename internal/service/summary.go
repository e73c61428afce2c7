package service

import (
	"context"
	"fmt"

	"github.com/carelog/backend/internal/insights"
	"github.com/carelog/backend/internal/models"
	"github.com/carelog/backend/internal/repository"
)

type summaryService struct {
	logRepo     repository.DailyLogRepository
	patientRepo repository.PatientRepository
	summaryRepo repository.SummaryRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(logRepo repository.DailyLogRepository, patientRepo repository.PatientRepository, summaryRepo repository.SummaryRepository) SummaryService {
	return &summaryService{
		logRepo:     logRepo,
		patientRepo: patientRepo,
		summaryRepo: summaryRepo,
	}
}

// GenerateSummary aggregates the last 30 days of logs locally, asks the
// upstream generator for the narrative sections, and attaches the local
// numbers so the caller sees exactly the data the narrative was built from.
func (s *summaryService) GenerateSummary(ctx context.Context, patientID int, userToken string) (*models.DoctorSummary, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}

	logs, err := s.logRepo.GetByPatientID(ctx, patientID, insights.SummaryWindowDays, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}

	stats := insights.BuildSummaryStats(logs, patient.Medications)

	summary, err := s.summaryRepo.Generate(ctx, patientID, &stats, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	summary.AdherenceData = stats.Adherence
	return summary, nil
}
