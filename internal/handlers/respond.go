package handlers

import (
	"errors"
	"net/http"

	"github.com/carelog/backend/internal/apierror"
	"github.com/carelog/backend/internal/logger"
	"github.com/carelog/backend/pkg/healthapi"
	"github.com/gin-gonic/gin"
)

// userToken pulls the verified bearer token out of the gin context so
// it can be forwarded upstream. Empty when auth did not run.
func userToken(c *gin.Context) string {
	if token, exists := c.Get("user_token"); exists {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return ""
}

// writeUpstreamError maps a failed upstream fetch to a problem response.
// Upstream 4xx statuses keep their meaning; everything else, including
// transport failures and undecodable bodies, surfaces as a 502 rather
// than being swallowed.
func writeUpstreamError(c *gin.Context, err error) {
	log := logger.Ctx(c.Request.Context())
	requestID := apierror.GetRequestID(c)

	var statusErr *healthapi.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusNotFound:
			log.Debug("upstream resource not found", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Patient", c.Param("id")))
			return
		case http.StatusUnauthorized:
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			return
		case http.StatusForbidden:
			apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
			return
		}
	}

	log.Error("upstream health api request failed", logger.Err(err))
	apierror.WriteProblem(c, apierror.NewUpstreamError(requestID))
}
