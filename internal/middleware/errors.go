package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/response"
)

// ErrorHandler is the single funnel for every error raised inside a
// request's lifecycle. Handlers record failures with c.Error; this
// middleware normalizes the last one into the error envelope.
func ErrorHandler(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		resp, status := apierrors.Normalize(err)
		if status == http.StatusInternalServerError {
			// The original error stays in the logs; the client only ever
			// sees the normalized message.
			log.WithField("transactionId", TransactionID(c)).WithError(err).Error("request failed")
		}

		if c.Writer.Written() {
			return
		}
		response.Err(c, status, resp)
	}
}
