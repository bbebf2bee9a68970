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

// BoardService handles board business logic. Every operation checks the
// board belongs to the acting user; foreign boards surface as not-found so
// existence is not leaked.
type BoardService struct {
	boards repository.BoardRepository
	users  repository.UserRepository
	tasks  repository.TaskRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(boards repository.BoardRepository, users repository.UserRepository, tasks repository.TaskRepository) *BoardService {
	return &BoardService{
		boards: boards,
		users:  users,
		tasks:  tasks,
	}
}

// Create adds a board with the default name and description to the user's
// board list and returns its identifier.
func (s *BoardService) Create(ctx context.Context, userID primitive.ObjectID) (primitive.ObjectID, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, apierrors.ErrUserDoesNotExist
		}
		return primitive.NilObjectID, fmt.Errorf("failed to find user: %w", err)
	}

	board := &models.Board{
		Name:        models.DefaultBoardName,
		Description: models.DefaultBoardDescription,
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create board: %w", err)
	}
	if err := s.users.AddBoard(ctx, userID, board.ID); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to attach board: %w", err)
	}
	return board.ID, nil
}

// Get returns one of the user's boards.
func (s *BoardService) Get(ctx context.Context, userID, boardID primitive.ObjectID) (*models.Board, error) {
	if err := s.checkOwnership(ctx, userID, boardID); err != nil {
		return nil, err
	}

	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierrors.ErrResourceDoesNotExist
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	return board, nil
}

// Update applies validated fields to one of the user's boards and returns the
// updated document.
func (s *BoardService) Update(ctx context.Context, userID, boardID primitive.ObjectID, fields map[string]any) (*models.Board, error) {
	if err := s.checkOwnership(ctx, userID, boardID); err != nil {
		return nil, err
	}

	board, err := s.boards.Update(ctx, boardID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierrors.ErrResourceDoesNotExist
		}
		return nil, fmt.Errorf("failed to update board: %w", err)
	}
	return board, nil
}

// Delete removes one of the user's boards, cascades to its tasks and reports
// how many tasks went with it.
func (s *BoardService) Delete(ctx context.Context, userID, boardID primitive.ObjectID) (int64, error) {
	if err := s.checkOwnership(ctx, userID, boardID); err != nil {
		return 0, err
	}

	board, err := s.boards.Delete(ctx, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, apierrors.ErrResourceDoesNotExist
		}
		return 0, fmt.Errorf("failed to delete board: %w", err)
	}

	if err := s.users.RemoveBoard(ctx, userID, boardID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("failed to detach board: %w", err)
	}

	deleted, err := s.tasks.DeleteByIDs(ctx, board.Tasks)
	if err != nil {
		return 0, fmt.Errorf("failed to delete board tasks: %w", err)
	}
	return deleted, nil
}

func (s *BoardService) checkOwnership(ctx context.Context, userID, boardID primitive.ObjectID) error {
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
	return nil
}
