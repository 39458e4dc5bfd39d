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

type AssessmentRepo struct {
	col *mongo.Collection
}

func NewAssessmentRepo(db *mongo.Database) *AssessmentRepo {
	return &AssessmentRepo{col: db.Collection("fitness_assessment")}
}

func (r *AssessmentRepo) Upsert(ctx context.Context, a models.FitnessAssessment) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user": a.User},
		bson.M{"$set": bson.M{
			"level":         a.Level,
			"pushups":       a.Pushups,
			"squats":        a.Squats,
			"plank_seconds": a.PlankSeconds,
		}},
		options.Update().SetUpsert(true))
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *AssessmentRepo) Find(ctx context.Context, user string) (*models.FitnessAssessment, error) {
	var a models.FitnessAssessment
	err := r.col.FindOne(ctx, bson.M{"user": user}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("fitness assessment: %w", services.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &a, nil
}
