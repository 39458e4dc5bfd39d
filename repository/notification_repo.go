package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type NotificationRepo struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) *NotificationRepo {
	return &NotificationRepo{col: db.Collection("notifications")}
}

func (r *NotificationRepo) Insert(ctx context.Context, n models.Notification) error {
	if _, err := r.col.InsertOne(ctx, n); err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *NotificationRepo) ListByRecipient(ctx context.Context, user string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	out := []models.Notification{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (r *NotificationRepo) MarkAllSeen(ctx context.Context, user string) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"user": user, "seen": false},
		bson.M{"$set": bson.M{"seen": true}})
	if err != nil {
		return storeErr(err)
	}
	return nil
}
