package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/services"
)

type StepsRepo struct {
	col *mongo.Collection
}

func NewStepsRepo(db *mongo.Database) *StepsRepo {
	return &StepsRepo{col: db.Collection("steps")}
}

func (r *StepsRepo) FindByDate(ctx context.Context, email, date string) (*models.StepEntry, error) {
	var e models.StepEntry
	err := r.col.FindOne(ctx, bson.M{"email": email, "date": date}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("steps for %s: %w", date, services.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &e, nil
}

func (r *StepsRepo) Upsert(ctx context.Context, email, date string, steps int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"email": email, "date": date},
		bson.M{"$set": bson.M{"steps": steps, "last_updated": time.Now().UTC()}},
		options.Update().SetUpsert(true))
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// TotalBetween sums the step counts over an inclusive date range. Dates are
// YYYY-MM-DD strings, so lexicographic range comparison is chronological.
func (r *StepsRepo) TotalBetween(ctx context.Context, email, from, to string) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"email": email, "date": bson.M{"$gte": from, "$lte": to}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$steps"}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, storeErr(err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total int `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, storeErr(err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
