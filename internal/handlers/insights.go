package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/carelog/backend/internal/apierror"
	"github.com/carelog/backend/internal/models"
	"github.com/carelog/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// InsightsHandler handles insight-related HTTP requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// patientID parses the :id route parameter. A non-numeric ID is a
// validation problem, not a lookup miss.
func patientID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "id", Message: "must be a positive integer", Code: "invalid_id"},
		}))
		return 0, false
	}
	return id, true
}

// GetMetrics returns the metric listing rows for a patient
// GET /api/v1/patients/:id/insights/metrics
func (h *InsightsHandler) GetMetrics(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	rows, err := h.insightsService.GetMetricRows(c.Request.Context(), id, userToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": rows})
}

// GetMetricDetail returns one metric's series, change and chart geometry
// GET /api/v1/patients/:id/insights/metrics/:key?timeframe=1W|1M|3M|1Y
func (h *InsightsHandler) GetMetricDetail(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	tf, err := models.ParseTimeframe(c.DefaultQuery("timeframe", string(models.TimeframeMonth)))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "timeframe", Message: "must be one of 1W, 1M, 3M, 1Y", Code: "invalid_timeframe"},
		}))
		return
	}

	key := c.Param("key")
	detail, err := h.insightsService.GetMetricDetail(c.Request.Context(), id, key, tf, userToken(c))
	if err != nil {
		if errors.Is(err, service.ErrMetricNotFound) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Metric", key))
			return
		}
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetObservations returns the correlation-backed observations
// GET /api/v1/patients/:id/insights/observations
func (h *InsightsHandler) GetObservations(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	set, err := h.insightsService.GetObservations(c.Request.Context(), id, userToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, set)
}

// GetEvents returns the event markers for a patient's log history
// GET /api/v1/patients/:id/insights/events
func (h *InsightsHandler) GetEvents(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	markers, err := h.insightsService.GetEventMarkers(c.Request.Context(), id, userToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": markers})
}
