// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/repository"
)

type MockCartsRepositoryInterface struct {
	mock.Mock
}

func (m *MockCartsRepositoryInterface) Find(ctx context.Context, sessionID string) (*model.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartsRepositoryInterface) Save(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartsRepositoryInterface) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockOrdersRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrdersRepositoryInterface) NextSequence(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) Insert(ctx context.Context, order *model.OrderDraft) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrdersRepositoryInterface) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.OrderDraft, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderDraft), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) Get(ctx context.Context, orderNumber string) (*model.OrderDraft, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDraft), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) TrimSession(ctx context.Context, sessionID string, keep int) error {
	args := m.Called(ctx, sessionID, keep)
	return args.Error(0)
}

type MockLoyaltyRepositoryInterface struct {
	mock.Mock
}

func (m *MockLoyaltyRepositoryInterface) Get(ctx context.Context, sessionID string) (*repository.LoyaltyAccount, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.LoyaltyAccount), args.Error(1)
}

func (m *MockLoyaltyRepositoryInterface) RecordOrder(ctx context.Context, sessionID string, points int64, spent decimal.Decimal) (*repository.LoyaltyAccount, error) {
	args := m.Called(ctx, sessionID, points, spent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.LoyaltyAccount), args.Error(1)
}

func (m *MockLoyaltyRepositoryInterface) RedeemPoints(ctx context.Context, sessionID string, points int64) (*repository.LoyaltyAccount, error) {
	args := m.Called(ctx, sessionID, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.LoyaltyAccount), args.Error(1)
}

func (m *MockLoyaltyRepositoryInterface) RefundPoints(ctx context.Context, sessionID string, points int64) error {
	args := m.Called(ctx, sessionID, points)
	return args.Error(0)
}

func (m *MockLoyaltyRepositoryInterface) SetVIP(ctx context.Context, sessionID string, vip bool) error {
	args := m.Called(ctx, sessionID, vip)
	return args.Error(0)
}

type MockCouponsRepositoryInterface struct {
	mock.Mock
}

func (m *MockCouponsRepositoryInterface) ListActive(ctx context.Context) ([]model.DiscountRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiscountRule), args.Error(1)
}

func (m *MockCouponsRepositoryInterface) List(ctx context.Context, limit int) ([]model.DiscountRule, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiscountRule), args.Error(1)
}

func (m *MockCouponsRepositoryInterface) Upsert(ctx context.Context, rule model.DiscountRule, updatedBy string) (*model.DiscountRule, error) {
	args := m.Called(ctx, rule, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiscountRule), args.Error(1)
}

func (m *MockCouponsRepositoryInterface) SetActive(ctx context.Context, code string, active bool, updatedBy string) error {
	args := m.Called(ctx, code, active, updatedBy)
	return args.Error(0)
}

func (m *MockCouponsRepositoryInterface) Seed(ctx context.Context, rules []model.DiscountRule) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}

type MockUserRepositoryInterface struct {
	mock.Mock
}

func (m *MockUserRepositoryInterface) Create(ctx context.Context, user *model.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepositoryInterface) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockUserRepositoryInterface) FindByEmailForAuth(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockUserRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockUserRepositoryInterface) Update(ctx context.Context, user *model.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepositoryInterface) List(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.AdminUser, error) {
	args := m.Called(ctx, filter, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AdminUser), args.Error(1)
}

type MockTokenRepositoryInterface struct {
	mock.Mock
}

func (m *MockTokenRepositoryInterface) Create(ctx context.Context, token *model.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepositoryInterface) FindByToken(ctx context.Context, tokenString string) (*model.Token, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockTokenRepositoryInterface) FindByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) ([]*model.Token, error) {
	args := m.Called(ctx, userID, tokenType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Token), args.Error(1)
}

func (m *MockTokenRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTokenRepositoryInterface) DeleteByToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockTokenRepositoryInterface) DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error {
	args := m.Called(ctx, userID, tokenType)
	return args.Error(0)
}

func (m *MockTokenRepositoryInterface) IsBlacklisted(ctx context.Context, tokenString string) (bool, error) {
	args := m.Called(ctx, tokenString)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepositoryInterface) CleanupExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockZonesRepositoryInterface struct {
	mock.Mock
}

func (m *MockZonesRepositoryInterface) ListActive(ctx context.Context) ([]model.DeliveryZone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryZone), args.Error(1)
}

func (m *MockZonesRepositoryInterface) List(ctx context.Context) ([]model.DeliveryZone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryZone), args.Error(1)
}

func (m *MockZonesRepositoryInterface) Upsert(ctx context.Context, zone model.DeliveryZone, updatedBy string) (*model.DeliveryZone, error) {
	args := m.Called(ctx, zone, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeliveryZone), args.Error(1)
}

func (m *MockZonesRepositoryInterface) Seed(ctx context.Context, zones []model.DeliveryZone) error {
	args := m.Called(ctx, zones)
	return args.Error(0)
}

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) ListMenuItems(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertMenuItem(ctx context.Context, item model.MenuItem, updatedBy string) (*model.MenuItem, error) {
	args := m.Called(ctx, item, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ListExtras(ctx context.Context) ([]model.ExtraOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExtraOption), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertExtra(ctx context.Context, extra model.ExtraOption, updatedBy string) (*model.ExtraOption, error) {
	args := m.Called(ctx, extra, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtraOption), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) Seed(ctx context.Context, items []model.MenuItem, extras []model.ExtraOption) error {
	args := m.Called(ctx, items, extras)
	return args.Error(0)
}
