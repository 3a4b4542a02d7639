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

// CouponsRepository persists coupon configuration documents.
type CouponsRepository struct {
	collection *mongo.Collection
}

// NewCouponsRepository creates a new coupons repository.
func NewCouponsRepository(db *MongoDB) *CouponsRepository {
	return &CouponsRepository{
		collection: db.Coupons,
	}
}

// ListActive returns all active coupon rules.
func (r *CouponsRepository) ListActive(ctx context.Context) ([]model.DiscountRule, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rules []model.DiscountRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// List returns all coupon rules, newest first.
func (r *CouponsRepository) List(ctx context.Context, limit int) ([]model.DiscountRule, error) {
	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rules []model.DiscountRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Upsert creates or replaces a coupon rule keyed by its code.
func (r *CouponsRepository) Upsert(ctx context.Context, rule model.DiscountRule, updatedBy string) (*model.DiscountRule, error) {
	rule.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"type":               rule.Type,
			"value":              rule.Value,
			"min_order_subtotal": rule.MinOrderSubtotal,
			"description":        rule.Description,
			"active":             rule.Active,
			"updated_at":         rule.UpdatedAt,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var saved model.DiscountRule
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": rule.Code},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// SetActive flips a coupon's active flag.
func (r *CouponsRepository) SetActive(ctx context.Context, code string, active bool, updatedBy string) error {
	set := bson.M{"active": active, "updated_at": time.Now()}
	if updatedBy != "" {
		set["updated_by"] = updatedBy
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": code}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Seed inserts the given rules only when the collection is empty.
func (r *CouponsRepository) Seed(ctx context.Context, rules []model.DiscountRule) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(rules))
	for i, rule := range rules {
		if rule.UpdatedAt.IsZero() {
			rule.UpdatedAt = time.Now()
		}
		docs[i] = rule
	}

	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
