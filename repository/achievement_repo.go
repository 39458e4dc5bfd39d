package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type AchievementRepo struct {
	col *mongo.Collection
}

func NewAchievementRepo(db *mongo.Database) *AchievementRepo {
	return &AchievementRepo{col: db.Collection("achievements")}
}

func (r *AchievementRepo) Insert(ctx context.Context, a models.Achievement) error {
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *AchievementRepo) ListByOwner(ctx context.Context, user string) ([]models.Achievement, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	out := []models.Achievement{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (r *AchievementRepo) IncrementLikes(ctx context.Context, user, title string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"title": title, "user": user},
		bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		return storeErr(err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("achievement %q: %w", title, services.ErrNotFound)
	}
	return nil
}
