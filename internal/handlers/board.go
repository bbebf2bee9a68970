package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
	"taskboard-api/internal/services"
	"taskboard-api/internal/validation"
)

// BoardHandler coordinates board HTTP handlers.
type BoardHandler struct {
	boards *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boards *services.BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// CreateBoard creates a board with the default name and description.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	boardID, err := h.boards.Create(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{"boardId": boardID})
}

// GetBoard returns one of the user's boards by id.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	boardID, verr := validation.ValidateObjectID(c.Param("boardId"))
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	board, err := h.boards.Get(c.Request.Context(), userID, boardID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, boardPayload(board))
}

// UpdateBoard renames a board or changes its description.
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	boardID, verr := validation.ValidateObjectID(c.Param("boardId"))
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	raw, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	values, verr := validation.BoardUpdateSchema.Validate(raw)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	board, err := h.boards.Update(c.Request.Context(), userID, boardID, values)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, boardPayload(board))
}

// DeleteBoard removes a board and every task on it.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	boardID, verr := validation.ValidateObjectID(c.Param("boardId"))
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	deletedTasks, err := h.boards.Delete(c.Request.Context(), userID, boardID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{
		"message": fmt.Sprintf("Board with ID %s deleted successfully with %d tasks.", boardID.Hex(), deletedTasks),
	})
}
