package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StepEntry is one document per user per calendar day (UTC).
type StepEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email       string             `bson:"email" json:"email"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	Steps       int                `bson:"steps" json:"steps"`
	LastUpdated time.Time          `bson:"last_updated" json:"last_updated"`
}
