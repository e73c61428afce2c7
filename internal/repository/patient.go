package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carelog/backend/internal/models"
	"github.com/carelog/backend/pkg/healthapi"
)

type patientRepository struct {
	client *healthapi.Client
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(client *healthapi.Client) PatientRepository {
	return &patientRepository{client: client}
}

func (r *patientRepository) List(ctx context.Context, userToken string) ([]models.Patient, error) {
	body, err := r.client.Get(ctx, "/patients/", nil, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	var patients []models.Patient
	if err := json.Unmarshal(body, &patients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patients: %w", err)
	}

	return patients, nil
}

func (r *patientRepository) GetByID(ctx context.Context, id int, userToken string) (*models.Patient, error) {
	body, err := r.client.Get(ctx, fmt.Sprintf("/patients/%d", id), nil, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient %d: %w", id, err)
	}

	var patient models.Patient
	if err := json.Unmarshal(body, &patient); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patient: %w", err)
	}

	return &patient, nil
}
