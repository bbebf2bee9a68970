package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard-api/internal/models"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("repository: document not found")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithDefaultBoard creates a user together with their first board
	// and wires the user's board list and last visited board to it.
	CreateWithDefaultBoard(ctx context.Context, user *models.User, board *models.Board) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// AddBoard appends a board to the user's ordered board list
	AddBoard(ctx context.Context, userID, boardID primitive.ObjectID) error

	// RemoveBoard pulls a board from the user's board list
	RemoveBoard(ctx context.Context, userID, boardID primitive.ObjectID) error

	// SetLastVisitedBoard records the board the client should reopen
	SetLastVisitedBoard(ctx context.Context, userID, boardID primitive.ObjectID) error

	// Delete removes a user and returns the deleted document for cascades
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// Create creates a new board
	Create(ctx context.Context, board *models.Board) error

	// FindByID finds a board by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Board, error)

	// Update applies the given fields and returns the updated document
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Board, error)

	// Delete removes a board and returns the deleted document for cascades
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Board, error)

	// AddTask appends a task to the board's ordered task list
	AddTask(ctx context.Context, boardID, taskID primitive.ObjectID) error

	// RemoveTask pulls a task from the board's task list
	RemoveTask(ctx context.Context, boardID, taskID primitive.ObjectID) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)

	// Update applies the given fields and returns the updated document
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Task, error)

	// Delete removes a task by ID
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByIDs removes every task in ids and reports how many were deleted
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
