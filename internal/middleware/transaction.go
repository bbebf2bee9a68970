package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const ContextKeyTransactionID = "transactionId"

// Transaction assigns every request a transaction id and logs the request
// once it completes.
func Transaction(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		txnID := uuid.NewString()
		c.Set(ContextKeyTransactionID, txnID)
		start := time.Now()

		c.Next()

		log.WithFields(logrus.Fields{
			"transactionId": txnID,
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        c.Writer.Status(),
			"latency":       time.Since(start).String(),
		}).Info("request completed")
	}
}

// TransactionID returns the transaction id assigned to this request.
func TransactionID(c *gin.Context) string {
	return c.GetString(ContextKeyTransactionID)
}
