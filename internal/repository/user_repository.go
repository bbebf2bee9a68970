package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskboard-api/internal/database"
	"taskboard-api/internal/models"
)

// MongoUserRepository is a MongoDB implementation of UserRepository
type MongoUserRepository struct {
	users  *mongo.Collection
	boards *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{
		users:  db.Collection(database.UsersCollection),
		boards: db.Collection(database.BoardsCollection),
	}
}

// CreateWithDefaultBoard inserts the board first, then the user referencing
// it. Without a replica set there is no multi-document transaction; a failed
// second insert leaves an orphaned board, which the controllers tolerate.
func (r *MongoUserRepository) CreateWithDefaultBoard(ctx context.Context, user *models.User, board *models.Board) error {
	now := time.Now().UTC()

	board.ID = primitive.NewObjectID()
	board.CreatedAt = now
	board.UpdatedAt = now
	if board.Tasks == nil {
		board.Tasks = []primitive.ObjectID{}
	}
	if _, err := r.boards.InsertOne(ctx, board); err != nil {
		return err
	}

	user.ID = primitive.NewObjectID()
	user.BoardIDs = []primitive.ObjectID{board.ID}
	user.LastVisitedBoardID = board.ID
	user.CreatedAt = now
	user.UpdatedAt = now
	_, err := r.users.InsertOne(ctx, user)
	return err
}

// FindByID finds a user by ID
func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// AddBoard appends a board to the user's board list
func (r *MongoUserRepository) AddBoard(ctx context.Context, userID, boardID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{
		"$push": bson.M{"boardIds": boardID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

// RemoveBoard pulls a board from the user's board list
func (r *MongoUserRepository) RemoveBoard(ctx context.Context, userID, boardID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{
		"$pull": bson.M{"boardIds": boardID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

// SetLastVisitedBoard records the board the client should reopen
func (r *MongoUserRepository) SetLastVisitedBoard(ctx context.Context, userID, boardID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{
		"$set": bson.M{
			"lastVisitedBoardId": boardID,
			"updatedAt":          time.Now().UTC(),
		},
	})
}

// Delete removes a user and returns the deleted document
func (r *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.users.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
