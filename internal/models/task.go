package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "toDo"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusWontDo     TaskStatus = "wontDo"
)

// TaskStatusValues lists every accepted status, in the order the API reports them.
func TaskStatusValues() []string {
	return []string{
		string(TaskStatusInProgress),
		string(TaskStatusCompleted),
		string(TaskStatusWontDo),
		string(TaskStatusToDo),
	}
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus         `bson:"status" json:"status"`
	Icon        *string            `bson:"icon,omitempty" json:"icon,omitempty"`
	BoardID     primitive.ObjectID `bson:"boardId" json:"boardId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
