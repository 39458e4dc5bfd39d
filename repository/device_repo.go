package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type DeviceRepo struct {
	col *mongo.Collection
}

func NewDeviceRepo(db *mongo.Database) *DeviceRepo {
	return &DeviceRepo{col: db.Collection("devices")}
}

// Upsert keys on (user, token_hash) so re-registering the same device token
// refreshes its endpoint instead of duplicating it.
func (r *DeviceRepo) Upsert(ctx context.Context, d models.Device) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user": d.User, "token_hash": d.TokenHash},
		bson.M{"$set": bson.M{
			"platform":     d.Platform,
			"endpoint_arn": d.EndpointARN,
			"enabled":      d.Enabled,
			"updated_at":   d.UpdatedAt,
		}},
		options.Update().SetUpsert(true))
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *DeviceRepo) ListEnabledByUser(ctx context.Context, user string) ([]models.Device, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": user, "enabled": true})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	out := []models.Device{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
