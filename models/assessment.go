package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FitnessAssessment stores the self-test results and the level derived from
// them. One document per user, upserted on each assessment.
type FitnessAssessment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User         string             `bson:"user" json:"user"`
	Level        string             `bson:"level" json:"level"`
	Pushups      int                `bson:"pushups" json:"pushups"`
	Squats       int                `bson:"squats" json:"squats"`
	PlankSeconds int                `bson:"plank_seconds" json:"plank_seconds"`
}
