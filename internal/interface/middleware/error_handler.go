package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-registration-service/pkg/apperrors"
	"user-registration-service/pkg/response"
)

// ErrorHandler is the single place failures become HTTP responses. Handlers
// report errors via c.Error; anything that is not an *apperrors.Error is
// treated as an unexpected internal failure.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperrors.Error
		if !errors.As(err, &appErr) {
			appErr = apperrors.Internal("", err)
		}

		if appErr.Status >= http.StatusInternalServerError && logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
			}).Error("request failed")
		}

		resp := response.Error[any](c, appErr.Status, appErr.Message, appErr.Details)
		c.AbortWithStatusJSON(resp.Status, resp)
	}
}
