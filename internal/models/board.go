package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default contents of the board created at signup and on POST /boards.
const (
	DefaultBoardName        = "My Task Board"
	DefaultBoardDescription = "Tasks to keep organised"
)

type Board struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Tasks       []primitive.ObjectID `bson:"tasks" json:"tasks"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
