package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is keyed by the verified email; upserted on onboarding.
type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email          string             `bson:"email" json:"email"`
	Name           string             `bson:"name" json:"name"`
	Age            int                `bson:"age" json:"age"`
	Gender         string             `bson:"gender" json:"gender"`
	Height         float64            `bson:"height" json:"height"` // cm
	Weight         float64            `bson:"weight" json:"weight"` // kg
	BMI            float64            `bson:"bmi" json:"bmi"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
