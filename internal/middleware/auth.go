package middleware

import (
	"strconv"
	"strings"

	"github.com/carelog/backend/internal/apierror"
	"github.com/carelog/backend/internal/logger"
	"github.com/carelog/backend/pkg/healthapi"
	"github.com/gin-gonic/gin"
)

// Auth middleware to verify bearer tokens against the health-records API
func Auth(client *healthapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("authentication failed: invalid authorization format")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		token := parts[1]

		user, err := client.VerifyToken(c.Request.Context(), token)
		if err != nil {
			log.Warn("authentication failed: token verification error",
				logger.Err(err),
			)
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		userID := strconv.Itoa(user.ID)

		// Set user in context; the token travels with every upstream call
		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_token", token)

		// Add user ID to request context for logging
		ctx := logger.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("authentication successful",
			logger.String("user_id", userID),
			logger.String("user_email", user.Email),
		)

		c.Next()
	}
}
