package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/models"
	"taskboard-api/internal/repository"
)

// TaskService handles task business logic. Tasks are reached through their
// owning board, so every operation checks the board belongs to the acting
// user.
type TaskService struct {
	tasks  repository.TaskRepository
	boards repository.BoardRepository
	users  repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks repository.TaskRepository, boards repository.BoardRepository, users repository.UserRepository) *TaskService {
	return &TaskService{
		tasks:  tasks,
		boards: boards,
		users:  users,
	}
}

// Create inserts a task under an existing board of the user's and appends it
// to the board's task list.
func (s *TaskService) Create(ctx context.Context, userID, boardID primitive.ObjectID, fields map[string]any) (*models.Task, error) {
	if err := s.checkBoard(ctx, userID, boardID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:    fields["name"].(string),
		Status:  models.TaskStatusToDo,
		BoardID: boardID,
	}
	applyTaskFields(task, fields)

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if err := s.boards.AddTask(ctx, boardID, task.ID); err != nil {
		return nil, fmt.Errorf("failed to attach task: %w", err)
	}
	return task, nil
}

// Update applies validated fields to a task and returns the updated document.
func (s *TaskService) Update(ctx context.Context, userID, taskID primitive.ObjectID, fields map[string]any) (*models.Task, error) {
	task, err := s.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	updated, err := s.tasks.Update(ctx, task.ID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierrors.ErrResourceDoesNotExist
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete removes a task and pulls it from its board's task list.
func (s *TaskService) Delete(ctx context.Context, userID, taskID primitive.ObjectID) error {
	task, err := s.findOwned(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apierrors.ErrResourceDoesNotExist
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if err := s.boards.RemoveTask(ctx, task.BoardID, task.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to detach task: %w", err)
	}
	return nil
}

func (s *TaskService) findOwned(ctx context.Context, userID, taskID primitive.ObjectID) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierrors.ErrResourceDoesNotExist
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if err := s.checkBoard(ctx, userID, task.BoardID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) checkBoard(ctx context.Context, userID, boardID primitive.ObjectID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apierrors.ErrUserDoesNotExist
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	if !user.OwnsBoard(boardID) {
		return apierrors.ErrResourceDoesNotExist
	}
	if _, err := s.boards.FindByID(ctx, boardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apierrors.ErrResourceDoesNotExist
		}
		return fmt.Errorf("failed to find board: %w", err)
	}
	return nil
}

func applyTaskFields(task *models.Task, fields map[string]any) {
	if v, ok := fields["description"].(string); ok {
		task.Description = v
	}
	if v, ok := fields["status"].(string); ok {
		task.Status = models.TaskStatus(v)
	}
	if v, ok := fields["icon"]; ok {
		if v == nil {
			task.Icon = nil
		} else if icon, ok := v.(string); ok {
			task.Icon = &icon
		}
	}
}
