package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Email              string               `bson:"email" json:"email"`
	Password           string               `bson:"password" json:"-"`
	BoardIDs           []primitive.ObjectID `bson:"boardIds" json:"boardIds"`
	LastVisitedBoardID primitive.ObjectID   `bson:"lastVisitedBoardId,omitempty" json:"lastVisitedBoardId"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// OwnsBoard reports whether the board belongs to this user.
func (u *User) OwnsBoard(id primitive.ObjectID) bool {
	for _, boardID := range u.BoardIDs {
		if boardID == id {
			return true
		}
	}
	return false
}
