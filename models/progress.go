package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Progress holds the per-user workout streak. One document per user,
// upserted on every tracked day. Badge is the label awarded by the most
// recent tracked day, nil when that day crossed no threshold.
type Progress struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User          string             `bson:"user" json:"user"`
	CompletedDays int                `bson:"completed_days" json:"completed_days"`
	Badge         *string            `bson:"badge" json:"badge"`
}
