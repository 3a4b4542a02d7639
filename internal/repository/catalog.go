// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// CatalogRepository persists menu items and extra options.
type CatalogRepository struct {
	menuItems *mongo.Collection
	extras    *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		menuItems: db.MenuItems,
		extras:    db.Extras,
	}
}

// ListMenuItems returns menu items sorted by category then name.
func (r *CatalogRepository) ListMenuItems(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error) {
	filter := bson.M{}
	if onlyAvailable {
		filter["available"] = true
	}

	cursor, err := r.menuItems.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "name", Value: 1},
	}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var items []model.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMenuItem returns a single menu item, or nil when unknown.
func (r *CatalogRepository) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.menuItems.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertMenuItem creates or replaces a menu item keyed by its ID.
func (r *CatalogRepository) UpsertMenuItem(ctx context.Context, item model.MenuItem, updatedBy string) (*model.MenuItem, error) {
	update := bson.M{
		"$set": bson.M{
			"name":             item.Name,
			"base_price":       item.BasePrice,
			"discounted_price": item.DiscountedPrice,
			"category":         item.Category,
			"vegetarian":       item.Vegetarian,
			"vegan":            item.Vegan,
			"gluten_free":      item.GlutenFree,
			"spicy":            item.Spicy,
			"available":        item.Available,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var saved model.MenuItem
	err := r.menuItems.FindOneAndUpdate(
		ctx,
		bson.M{"_id": item.ID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// ListExtras returns all extra options sorted by category then name.
func (r *CatalogRepository) ListExtras(ctx context.Context) ([]model.ExtraOption, error) {
	cursor, err := r.extras.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "name", Value: 1},
	}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var extras []model.ExtraOption
	if err := cursor.All(ctx, &extras); err != nil {
		return nil, err
	}
	return extras, nil
}

// UpsertExtra creates or replaces an extra option keyed by its ID.
func (r *CatalogRepository) UpsertExtra(ctx context.Context, extra model.ExtraOption, updatedBy string) (*model.ExtraOption, error) {
	update := bson.M{
		"$set": bson.M{
			"name":     extra.Name,
			"price":    extra.Price,
			"category": extra.Category,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var saved model.ExtraOption
	err := r.extras.FindOneAndUpdate(
		ctx,
		bson.M{"_id": extra.ID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Seed inserts the given catalog only when both collections are empty.
func (r *CatalogRepository) Seed(ctx context.Context, items []model.MenuItem, extras []model.ExtraOption) error {
	count, err := r.menuItems.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 && len(items) > 0 {
		docs := make([]interface{}, len(items))
		for i, item := range items {
			docs[i] = item
		}
		if _, err := r.menuItems.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	count, err = r.extras.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 && len(extras) > 0 {
		docs := make([]interface{}, len(extras))
		for i, extra := range extras {
			docs[i] = extra
		}
		if _, err := r.extras.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	return nil
}
