package handlers

import (
	"net/http"

	"github.com/carelog/backend/internal/logger"
	"github.com/carelog/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// SummaryHandler handles doctor-summary generation requests
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// GenerateSummary builds the 30-day aggregates and returns the generated
// doctor summary
// POST /api/v1/patients/:id/summary
func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	log := logger.Ctx(c.Request.Context())

	summary, err := h.summaryService.GenerateSummary(c.Request.Context(), id, userToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	log.Info("doctor summary generated", logger.Int("patient_id", id))
	c.JSON(http.StatusOK, summary)
}
