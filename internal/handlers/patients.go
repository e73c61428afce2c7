package handlers

import (
	"net/http"

	"github.com/carelog/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// PatientsHandler handles patient listing and lookup requests
type PatientsHandler struct {
	patientService service.PatientService
}

// NewPatientsHandler creates a new patients handler
func NewPatientsHandler(patientService service.PatientService) *PatientsHandler {
	return &PatientsHandler{
		patientService: patientService,
	}
}

// ListPatients returns the caller's patients from the upstream API
// GET /api/v1/patients
func (h *PatientsHandler) ListPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients(c.Request.Context(), userToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GetPatient returns one patient with its medication list
// GET /api/v1/patients/:id
func (h *PatientsHandler) GetPatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), id, userToken(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}
