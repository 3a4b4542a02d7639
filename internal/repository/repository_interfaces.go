// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// CartsRepositoryInterface defines the interface for cart persistence operations.
type CartsRepositoryInterface interface {
	Find(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// CouponsRepositoryInterface defines the interface for coupon configuration operations.
type CouponsRepositoryInterface interface {
	ListActive(ctx context.Context) ([]model.DiscountRule, error)
	List(ctx context.Context, limit int) ([]model.DiscountRule, error)
	Upsert(ctx context.Context, rule model.DiscountRule, updatedBy string) (*model.DiscountRule, error)
	SetActive(ctx context.Context, code string, active bool, updatedBy string) error
	Seed(ctx context.Context, rules []model.DiscountRule) error
}

// ZonesRepositoryInterface defines the interface for delivery zone configuration operations.
type ZonesRepositoryInterface interface {
	ListActive(ctx context.Context) ([]model.DeliveryZone, error)
	List(ctx context.Context) ([]model.DeliveryZone, error)
	Upsert(ctx context.Context, zone model.DeliveryZone, updatedBy string) (*model.DeliveryZone, error)
	Seed(ctx context.Context, zones []model.DeliveryZone) error
}

// CatalogRepositoryInterface defines the interface for menu and extras operations.
type CatalogRepositoryInterface interface {
	ListMenuItems(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	UpsertMenuItem(ctx context.Context, item model.MenuItem, updatedBy string) (*model.MenuItem, error)
	ListExtras(ctx context.Context) ([]model.ExtraOption, error)
	UpsertExtra(ctx context.Context, extra model.ExtraOption, updatedBy string) (*model.ExtraOption, error)
	Seed(ctx context.Context, items []model.MenuItem, extras []model.ExtraOption) error
}

// OrdersRepositoryInterface defines the interface for order history operations.
type OrdersRepositoryInterface interface {
	NextSequence(ctx context.Context, key string) (int64, error)
	Insert(ctx context.Context, order *model.OrderDraft) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.OrderDraft, error)
	Get(ctx context.Context, orderNumber string) (*model.OrderDraft, error)
	TrimSession(ctx context.Context, sessionID string, keep int) error
}

// LoyaltyRepositoryInterface defines the interface for loyalty account operations.
type LoyaltyRepositoryInterface interface {
	Get(ctx context.Context, sessionID string) (*LoyaltyAccount, error)
	RecordOrder(ctx context.Context, sessionID string, points int64, spent decimal.Decimal) (*LoyaltyAccount, error)
	RedeemPoints(ctx context.Context, sessionID string, points int64) (*LoyaltyAccount, error)
	RefundPoints(ctx context.Context, sessionID string, points int64) error
	SetVIP(ctx context.Context, sessionID string, vip bool) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
