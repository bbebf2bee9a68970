package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard-api/internal/models"
)

// In-memory implementations backing handler and service tests, the same way
// the document store backs production. All three share one Store so cascades
// cross repositories.

type Store struct {
	mu     sync.Mutex
	users  map[primitive.ObjectID]*models.User
	boards map[primitive.ObjectID]*models.Board
	tasks  map[primitive.ObjectID]*models.Task
}

func NewStore() *Store {
	return &Store{
		users:  make(map[primitive.ObjectID]*models.User),
		boards: make(map[primitive.ObjectID]*models.Board),
		tasks:  make(map[primitive.ObjectID]*models.Task),
	}
}

func (s *Store) Users() UserRepository   { return &memoryUserRepository{store: s} }
func (s *Store) Boards() BoardRepository { return &memoryBoardRepository{store: s} }
func (s *Store) Tasks() TaskRepository   { return &memoryTaskRepository{store: s} }

type memoryUserRepository struct {
	store *Store
}

func (r *memoryUserRepository) CreateWithDefaultBoard(_ context.Context, user *models.User, board *models.Board) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	board.ID = primitive.NewObjectID()
	board.CreatedAt = now
	board.UpdatedAt = now
	if board.Tasks == nil {
		board.Tasks = []primitive.ObjectID{}
	}
	s.boards[board.ID] = board

	user.ID = primitive.NewObjectID()
	user.BoardIDs = []primitive.ObjectID{board.ID}
	user.LastVisitedBoardID = board.ID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) AddBoard(_ context.Context, userID, boardID primitive.ObjectID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.BoardIDs = append(user.BoardIDs, boardID)
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryUserRepository) RemoveBoard(_ context.Context, userID, boardID primitive.ObjectID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	kept := user.BoardIDs[:0]
	for _, id := range user.BoardIDs {
		if id != boardID {
			kept = append(kept, id)
		}
	}
	user.BoardIDs = kept
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryUserRepository) SetLastVisitedBoard(_ context.Context, userID, boardID primitive.ObjectID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.LastVisitedBoardID = boardID
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.users, id)
	copied := *user
	return &copied, nil
}

type memoryBoardRepository struct {
	store *Store
}

func (r *memoryBoardRepository) Create(_ context.Context, board *models.Board) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	board.ID = primitive.NewObjectID()
	board.CreatedAt = now
	board.UpdatedAt = now
	if board.Tasks == nil {
		board.Tasks = []primitive.ObjectID{}
	}
	s.boards[board.ID] = board
	return nil
}

func (r *memoryBoardRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Board, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *board
	return &copied, nil
}

func (r *memoryBoardRepository) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) (*models.Board, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		board.Name = v
	}
	if v, ok := fields["description"].(string); ok {
		board.Description = v
	}
	board.UpdatedAt = time.Now().UTC()
	copied := *board
	return &copied, nil
}

func (r *memoryBoardRepository) Delete(_ context.Context, id primitive.ObjectID) (*models.Board, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.boards, id)
	copied := *board
	return &copied, nil
}

func (r *memoryBoardRepository) AddTask(_ context.Context, boardID, taskID primitive.ObjectID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[boardID]
	if !ok {
		return ErrNotFound
	}
	board.Tasks = append(board.Tasks, taskID)
	board.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryBoardRepository) RemoveTask(_ context.Context, boardID, taskID primitive.ObjectID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[boardID]
	if !ok {
		return ErrNotFound
	}
	kept := board.Tasks[:0]
	for _, id := range board.Tasks {
		if id != taskID {
			kept = append(kept, id)
		}
	}
	board.Tasks = kept
	board.UpdatedAt = time.Now().UTC()
	return nil
}

type memoryTaskRepository struct {
	store *Store
}

func (r *memoryTaskRepository) Create(_ context.Context, task *models.Task) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now
	s.tasks[task.ID] = task
	return nil
}

func (r *memoryTaskRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *memoryTaskRepository) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) (*models.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		task.Name = v
	}
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
	task.UpdatedAt = time.Now().UTC()
	copied := *task
	return &copied, nil
}

func (r *memoryTaskRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (r *memoryTaskRepository) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := s.tasks[id]; ok {
			delete(s.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}
