// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// OrdersRepository persists order drafts and the order number sequence.
type OrdersRepository struct {
	orders   *mongo.Collection
	counters *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		orders:   db.Orders,
		counters: db.Counters,
	}
}

// NextSequence atomically increments and returns the counter for the
// given key. Keys are date-scoped so order numbers reset daily.
func (r *OrdersRepository) NextSequence(ctx context.Context, key string) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// Insert stores a new order draft.
func (r *OrdersRepository) Insert(ctx context.Context, order *model.OrderDraft) error {
	_, err := r.orders.InsertOne(ctx, order)
	return err
}

// ListBySession returns a session's order history, newest first.
func (r *OrdersRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.OrderDraft, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.orders.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var orders []model.OrderDraft
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns a single order draft by its order number, or nil.
func (r *OrdersRepository) Get(ctx context.Context, orderNumber string) (*model.OrderDraft, error) {
	var order model.OrderDraft
	err := r.orders.FindOne(ctx, bson.M{"_id": orderNumber}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// TrimSession deletes a session's oldest orders beyond the keep limit.
func (r *OrdersRepository) TrimSession(ctx context.Context, sessionID string, keep int) error {
	if keep <= 0 {
		return nil
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(keep)).
		SetProjection(bson.M{"_id": 1})

	cursor, err := r.orders.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var stale []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &stale); err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]string, len(stale))
	for i, doc := range stale {
		ids[i] = doc.ID
	}

	_, err = r.orders.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}
