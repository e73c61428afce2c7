package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carelog/backend/internal/models"
	"github.com/carelog/backend/pkg/healthapi"
)

type summaryRepository struct {
	client *healthapi.Client
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(client *healthapi.Client) SummaryRepository {
	return &summaryRepository{client: client}
}

// Generate sends the locally computed aggregates upstream and returns the
// structured doctor summary. The upstream owns prompt construction; this
// side only supplies numbers and reads fields back.
func (r *summaryRepository) Generate(ctx context.Context, patientID int, stats *models.SummaryStats, userToken string) (*models.DoctorSummary, error) {
	body, err := r.client.Post(ctx, fmt.Sprintf("/summary/%d", patientID), stats, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary for patient %d: %w", patientID, err)
	}

	var summary models.DoctorSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}
