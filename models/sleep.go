package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type SleepEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User       string             `bson:"user" json:"user"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD
	SleepHours float64            `bson:"sleep_hours" json:"sleep_hours"`
}
