package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is immutable once written except for the Seen flag, which
// flips to true when the recipient lists their notifications.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User      string             `bson:"user" json:"user"`
	Message   string             `bson:"message" json:"message"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Seen      bool               `bson:"seen" json:"seen"`
}
