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

type ProgressRepo struct {
	col *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) *ProgressRepo {
	return &ProgressRepo{col: db.Collection("progress")}
}

func (r *ProgressRepo) Find(ctx context.Context, user string) (*models.Progress, error) {
	var p models.Progress
	err := r.col.FindOne(ctx, bson.M{"user": user}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("progress for %s: %w", user, services.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &p, nil
}

func (r *ProgressRepo) Upsert(ctx context.Context, user string, days int, badge *string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user": user},
		bson.M{"$set": bson.M{"completed_days": days, "badge": badge}},
		options.Update().SetUpsert(true))
	if err != nil {
		return storeErr(err)
	}
	return nil
}
