package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/models"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/token"
)

const bcryptCost = 12

// AuthService handles signup, login and account-level actions.
type AuthService struct {
	users  repository.UserRepository
	boards repository.BoardRepository
	tasks  repository.TaskRepository
	tokens *token.Manager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, boards repository.BoardRepository, tasks repository.TaskRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		users:  users,
		boards: boards,
		tasks:  tasks,
		tokens: tokens,
	}
}

// Signup creates a new user along with their default board and returns the
// new user's identifier.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", apierrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
	}
	board := &models.Board{
		Name:        models.DefaultBoardName,
		Description: models.DefaultBoardDescription,
	}
	if err := s.users.CreateWithDefaultBoard(ctx, user, board); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID.Hex(), nil
}

// Login verifies credentials and returns a signed credential plus the user's
// identifier. An unknown email and a wrong password surface as distinct errors.
func (s *AuthService) Login(ctx context.Context, email, password string) (signed string, userID string, err error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", apierrors.ErrUserDoesNotExist
		}
		return "", "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", apierrors.ErrInvalidCredentials
	}

	signed, err = s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}
	return signed, user.ID.Hex(), nil
}

// UserDetails returns the user together with their boards, in the user's
// board-list order. Boards missing from the store are skipped.
func (s *AuthService) UserDetails(ctx context.Context, userID primitive.ObjectID) (*models.User, []models.Board, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, apierrors.ErrUserDoesNotExist
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	boards := make([]models.Board, 0, len(user.BoardIDs))
	for _, boardID := range user.BoardIDs {
		board, err := s.boards.FindByID(ctx, boardID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("failed to load board: %w", err)
		}
		boards = append(boards, *board)
	}

	return user, boards, nil
}

// SetLastVisitedBoard records the board the client reopens on its next visit.
// The board must belong to the user.
func (s *AuthService) SetLastVisitedBoard(ctx context.Context, userID, boardID primitive.ObjectID) error {
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

	if err := s.users.SetLastVisitedBoard(ctx, userID, boardID); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Remove deletes the user and cascades to their boards and those boards'
// tasks.
func (s *AuthService) Remove(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.users.Delete(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apierrors.ErrUserDoesNotExist
		}
		return fmt.Errorf("failed to remove user: %w", err)
	}

	for _, boardID := range user.BoardIDs {
		board, err := s.boards.Delete(ctx, boardID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return fmt.Errorf("failed to remove board: %w", err)
		}
		if _, err := s.tasks.DeleteByIDs(ctx, board.Tasks); err != nil {
			return fmt.Errorf("failed to remove board tasks: %w", err)
		}
	}
	return nil
}
