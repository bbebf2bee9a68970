package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/models"
)

// bindBody decodes the request body into an untyped map for schema
// validation. An empty body reads as an empty object, matching what browser
// clients send on bodyless requests.
func bindBody(c *gin.Context) (map[string]any, error) {
	raw := make(map[string]any)
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return raw, nil
		}
		return nil, apierrors.ErrInvalidJSON
	}
	return raw, nil
}

func boardPayload(board *models.Board) gin.H {
	return gin.H{
		"_id":         board.ID,
		"name":        board.Name,
		"description": board.Description,
		"tasks":       board.Tasks,
		"createdAt":   board.CreatedAt,
		"updatedAt":   board.UpdatedAt,
	}
}
