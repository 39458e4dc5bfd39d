package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Achievement records a milestone (streak badge, well-rested sleep, ...).
// Repeated qualifying events create repeated records; there is no dedup.
type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User        string             `bson:"user" json:"user"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Likes       int                `bson:"likes" json:"likes"`
	Comments    []Comment          `bson:"comments" json:"comments"`
}
