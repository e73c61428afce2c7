package service

import (
	"context"
	"fmt"

	"github.com/carelog/backend/internal/models"
	"github.com/carelog/backend/internal/repository"
)

type patientService struct {
	patientRepo repository.PatientRepository
}

// NewPatientService creates a new patient service
func NewPatientService(patientRepo repository.PatientRepository) PatientService {
	return &patientService{patientRepo: patientRepo}
}

func (s *patientService) ListPatients(ctx context.Context, userToken string) ([]models.Patient, error) {
	patients, err := s.patientRepo.List(ctx, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) GetPatient(ctx context.Context, patientID int, userToken string) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}
