package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type ProfileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) *ProfileRepo {
	return &ProfileRepo{col: db.Collection("profiles")}
}

func (r *ProfileRepo) Upsert(ctx context.Context, p models.Profile) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"email": p.Email},
		bson.M{"$set": p},
		options.Update().SetUpsert(true))
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *ProfileRepo) Find(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("profile: %w", services.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &p, nil
}
