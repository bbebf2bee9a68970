package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
	"taskboard-api/internal/services"
	"taskboard-api/internal/validation"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	tasks *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTask creates a task under one of the user's boards.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	raw, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	values, verr := validation.TaskCreateSchema.Validate(raw)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	boardID, err := primitive.ObjectIDFromHex(values["boardId"].(string))
	if err != nil {
		_ = c.Error(apierrors.Validation(validation.MsgInvalidObjectID))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, boardID, values)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{"task": task})
}

// UpdateTask applies a partial update to a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	taskID, verr := validation.ValidateObjectID(c.Param("taskId"))
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	raw, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	values, verr := validation.TaskUpdateSchema.Validate(raw)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), userID, taskID, values)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{"task": task})
}

// DeleteTask removes a task and detaches it from its board.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	taskID, verr := validation.ValidateObjectID(c.Param("taskId"))
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, taskID); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{
		"message": fmt.Sprintf("Task with ID %s deleted successfully", taskID.Hex()),
	})
}
