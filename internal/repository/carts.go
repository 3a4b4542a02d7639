// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// CartsRepository persists session carts.
type CartsRepository struct {
	collection *mongo.Collection
}

// NewCartsRepository creates a new carts repository.
func NewCartsRepository(db *MongoDB) *CartsRepository {
	return &CartsRepository{
		collection: db.Carts,
	}
}

// Find returns the cart for a session, or nil when none is stored.
func (r *CartsRepository) Find(ctx context.Context, sessionID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts the full cart document keyed by session ID.
func (r *CartsRepository) Save(ctx context.Context, cart *model.Cart) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": cart.SessionID},
		cart,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the cart for a session. Missing carts are not an error.
func (r *CartsRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}
