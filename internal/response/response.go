// Package response implements the uniform {success, ...} envelope every
// endpoint answers with.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apierrors"
)

// Success writes a 200 with the payload spread into the envelope.
func Success(c *gin.Context, payload gin.H) {
	out := gin.H{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	c.JSON(http.StatusOK, out)
}

// Err writes the error envelope with the status chosen by the normalizer.
func Err(c *gin.Context, status int, e *apierrors.ErrorResponse) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   e,
	})
}
