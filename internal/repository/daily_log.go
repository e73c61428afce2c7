package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/carelog/backend/internal/models"
	"github.com/carelog/backend/pkg/healthapi"
)

type dailyLogRepository struct {
	client *healthapi.Client
}

// NewDailyLogRepository creates a new daily log repository
func NewDailyLogRepository(client *healthapi.Client) DailyLogRepository {
	return &dailyLogRepository{client: client}
}

func (r *dailyLogRepository) GetByPatientID(ctx context.Context, patientID, days int, userToken string) ([]models.DailyLog, error) {
	query := map[string]string{}
	if days > 0 {
		query["days"] = strconv.Itoa(days)
	}

	body, err := r.client.Get(ctx, fmt.Sprintf("/logs/%d", patientID), query, userToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs for patient %d: %w", patientID, err)
	}

	var logs []models.DailyLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logs: %w", err)
	}

	// Schema check at the boundary so nothing malformed reaches the
	// insight computations.
	for i := range logs {
		if err := logs[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid log %d for patient %d: %w", logs[i].ID, patientID, err)
		}
	}

	return logs, nil
}
