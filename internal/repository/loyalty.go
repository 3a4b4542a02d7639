// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInsufficientPoints is returned when a redemption asks for more
// points than the account holds.
var ErrInsufficientPoints = errors.New("insufficient loyalty points")

// LoyaltyAccount represents a session's loyalty standing in MongoDB.
type LoyaltyAccount struct {
	SessionID   string          `bson:"_id" json:"session_id"`
	Points      int64           `bson:"points" json:"points"`
	OrdersCount int             `bson:"orders_count" json:"orders_count"`
	TotalSpent  decimal.Decimal `bson:"total_spent" json:"total_spent" swaggertype:"string"`
	VIP         bool            `bson:"vip" json:"vip"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// LoyaltyRepository persists loyalty accounts.
type LoyaltyRepository struct {
	collection *mongo.Collection
}

// NewLoyaltyRepository creates a new loyalty repository.
func NewLoyaltyRepository(db *MongoDB) *LoyaltyRepository {
	return &LoyaltyRepository{
		collection: db.Loyalty,
	}
}

// Get returns the account for a session, or a zeroed account when none
// is stored yet.
func (r *LoyaltyRepository) Get(ctx context.Context, sessionID string) (*LoyaltyAccount, error) {
	var account LoyaltyAccount
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return &LoyaltyAccount{SessionID: sessionID, TotalSpent: decimal.Zero}, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// RecordOrder credits points and spend for a completed checkout and
// returns the updated account.
func (r *LoyaltyRepository) RecordOrder(ctx context.Context, sessionID string, points int64, spent decimal.Decimal) (*LoyaltyAccount, error) {
	var account LoyaltyAccount
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": sessionID},
		bson.M{
			"$inc": bson.M{"points": points, "orders_count": 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&account)
	if err != nil {
		return nil, err
	}

	// decimal does not survive $inc, so total spend is a read-modify-write.
	account.TotalSpent = account.TotalSpent.Add(spent)
	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"_id": sessionID},
		bson.M{"$set": bson.M{"total_spent": account.TotalSpent}},
	)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// RedeemPoints debits points from the account and returns the updated
// account. The debit is conditional so concurrent redemptions cannot
// overdraw.
func (r *LoyaltyRepository) RedeemPoints(ctx context.Context, sessionID string, points int64) (*LoyaltyAccount, error) {
	var account LoyaltyAccount
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": sessionID, "points": bson.M{"$gte": points}},
		bson.M{
			"$inc": bson.M{"points": -points},
			"$set": bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInsufficientPoints
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// RefundPoints credits points back to the account. Used to compensate
// a redemption when the checkout it was debited for fails.
func (r *LoyaltyRepository) RefundPoints(ctx context.Context, sessionID string, points int64) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": sessionID},
		bson.M{
			"$inc": bson.M{"points": points},
			"$set": bson.M{"updated_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// SetVIP flips the persisted VIP flag for a session.
func (r *LoyaltyRepository) SetVIP(ctx context.Context, sessionID string, vip bool) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": sessionID},
		bson.M{"$set": bson.M{"vip": vip, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	return err
}
