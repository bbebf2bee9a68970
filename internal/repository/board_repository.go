package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard-api/internal/database"
	"taskboard-api/internal/models"
)

// MongoBoardRepository is a MongoDB implementation of BoardRepository
type MongoBoardRepository struct {
	boards *mongo.Collection
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *mongo.Database) BoardRepository {
	return &MongoBoardRepository{
		boards: db.Collection(database.BoardsCollection),
	}
}

// Create creates a new board
func (r *MongoBoardRepository) Create(ctx context.Context, board *models.Board) error {
	now := time.Now().UTC()
	board.ID = primitive.NewObjectID()
	board.CreatedAt = now
	board.UpdatedAt = now
	if board.Tasks == nil {
		board.Tasks = []primitive.ObjectID{}
	}
	_, err := r.boards.InsertOne(ctx, board)
	return err
}

// FindByID finds a board by ID
func (r *MongoBoardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Board, error) {
	var board models.Board
	if err := r.boards.FindOne(ctx, bson.M{"_id": id}).Decode(&board); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

// Update applies the given fields and returns the updated document
func (r *MongoBoardRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Board, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var board models.Board
	err := r.boards.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, after).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

// Delete removes a board and returns the deleted document
func (r *MongoBoardRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Board, error) {
	var board models.Board
	if err := r.boards.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&board); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

// AddTask appends a task to the board's task list
func (r *MongoBoardRepository) AddTask(ctx context.Context, boardID, taskID primitive.ObjectID) error {
	return r.updateOne(ctx, boardID, bson.M{
		"$push": bson.M{"tasks": taskID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

// RemoveTask pulls a task from the board's task list
func (r *MongoBoardRepository) RemoveTask(ctx context.Context, boardID, taskID primitive.ObjectID) error {
	return r.updateOne(ctx, boardID, bson.M{
		"$pull": bson.M{"tasks": taskID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *MongoBoardRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.boards.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
