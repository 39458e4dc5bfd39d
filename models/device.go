package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Device is a registered push endpoint. TokenHash dedupes re-registrations
// of the same device token.
type Device struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User        string             `bson:"user" json:"user"`
	Platform    string             `bson:"platform" json:"platform"` // "android" | "ios"
	TokenHash   string             `bson:"token_hash" json:"-"`
	EndpointARN string             `bson:"endpoint_arn" json:"endpoint_arn"`
	Enabled     bool               `bson:"enabled" json:"enabled"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
