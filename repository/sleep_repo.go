package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type SleepRepo struct {
	col *mongo.Collection
}

func NewSleepRepo(db *mongo.Database) *SleepRepo {
	return &SleepRepo{col: db.Collection("sleep")}
}

func (r *SleepRepo) Insert(ctx context.Context, e models.SleepEntry) error {
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return storeErr(err)
	}
	return nil
}
