// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// ZonesRepository persists delivery zone configuration documents.
type ZonesRepository struct {
	collection *mongo.Collection
}

// NewZonesRepository creates a new zones repository.
func NewZonesRepository(db *MongoDB) *ZonesRepository {
	return &ZonesRepository{
		collection: db.Zones,
	}
}

// ListActive returns all active delivery zones.
func (r *ZonesRepository) ListActive(ctx context.Context) ([]model.DeliveryZone, error) {
	return r.find(ctx, bson.M{"active": true})
}

// List returns all delivery zones including inactive ones.
func (r *ZonesRepository) List(ctx context.Context) ([]model.DeliveryZone, error) {
	return r.find(ctx, bson.M{})
}

func (r *ZonesRepository) find(ctx context.Context, filter bson.M) ([]model.DeliveryZone, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var zones []model.DeliveryZone
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// Upsert creates or replaces a zone keyed by its zone key.
func (r *ZonesRepository) Upsert(ctx context.Context, zone model.DeliveryZone, updatedBy string) (*model.DeliveryZone, error) {
	zone.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":                    zone.Name,
			"flat_fee":                zone.FlatFee,
			"free_threshold_subtotal": zone.FreeThresholdSubtotal,
			"estimated_time":          zone.EstimatedTime,
			"active":                  zone.Active,
			"updated_at":              zone.UpdatedAt,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var saved model.DeliveryZone
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": zone.Key},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Seed inserts the given zones only when the collection is empty.
func (r *ZonesRepository) Seed(ctx context.Context, zones []model.DeliveryZone) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(zones))
	for i, zone := range zones {
		if zone.UpdatedAt.IsZero() {
			zone.UpdatedAt = time.Now()
		}
		docs[i] = zone
	}

	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
