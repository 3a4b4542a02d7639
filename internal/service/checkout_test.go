package service

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/mocks"
	"github.com/lulukitchen/cart-service/internal/repository"
)

var orderNumberPattern = regexp.MustCompile(`^LK-\d{6}-\d{4}$`)

func checkoutFixture(t *testing.T) (*SessionCartStore, *mocks.MockOrdersRepositoryInterface, *CheckoutServiceImpl) {
	t.Helper()
	store := newTestStore()
	pricer := NewPricer(NewCouponRegistry(), NewZoneRegistry())
	orders := new(mocks.MockOrdersRepositoryInterface)
	svc := NewCheckoutService(store, pricer, orders, nil)
	return store, orders, svc
}

func testCustomer() model.CustomerInfo {
	return model.CustomerInfo{Name: "Dana", Phone: "050-1234567", Address: "Jaffa St 1"}
}

func TestCheckout_Success(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")
	require.True(t, store.SetDeliveryZone(ctx, "s1", "jerusalem").OK)
	require.True(t, store.ApplyCoupon(ctx, "s1", "FIRST10").OK)

	orders.On("NextSequence", mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil)
	orders.On("TrimSession", mock.Anything, "s1", DefaultHistoryLimit).Return(nil)

	draft, result, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 0)
	require.NoError(t, err)
	require.True(t, result.OK)
	require.NotNil(t, draft)

	assert.Regexp(t, orderNumberPattern, draft.OrderNumber)
	assert.Equal(t, "s1", draft.SessionID)
	assert.Len(t, draft.Lines, 1)
	assert.Equal(t, []string{"FIRST10"}, draft.AppliedCoupons)
	assert.Equal(t, "130", draft.Totals.Total.String())
	assert.Equal(t, int64(130), draft.PointsAwarded)
	assert.Equal(t, model.OrderStatusDraft, draft.Status)

	// Checkout consumes the lines; applied coupons stay on the cart
	cart := store.Get(ctx, "s1")
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, []string{"FIRST10"}, cart.AppliedCoupons)

	orders.AssertExpectations(t)
}

func TestCheckout_OrderNumberUsesDailyCounter(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")

	day := time.Now().Format("060102")
	orders.On("NextSequence", mock.Anything, "orders-"+day).Return(int64(42), nil)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil)
	orders.On("TrimSession", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	draft, result, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 0)
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.Equal(t, fmt.Sprintf("LK-%s-0042", day), draft.OrderNumber)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	_, orders, svc := checkoutFixture(t)

	draft, result, err := svc.Checkout(context.Background(), "s1", testCustomer(), "cash", 0)
	require.NoError(t, err)
	assert.Nil(t, draft)
	assert.False(t, result.OK)
	assert.Equal(t, model.ReasonCartEmpty, result.Reason)

	orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCheckout_VIPDoublesPoints(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")
	store.SetVIP(ctx, "s1", true)

	orders.On("NextSequence", mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil)
	orders.On("TrimSession", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	draft, result, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 0)
	require.NoError(t, err)
	require.True(t, result.OK)

	// 100 - 15% VIP = 85, free delivery for VIP, 85 points doubled
	assert.Equal(t, "85", draft.Totals.Total.String())
	assert.Equal(t, int64(170), draft.PointsAwarded)
	assert.True(t, draft.VIP)
}

func TestCheckout_RedeemPoints(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	loyalty := new(mocks.MockLoyaltyRepositoryInterface)
	svc.loyalty = loyalty
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")
	require.True(t, store.SetDeliveryMethod(ctx, "s1", model.DeliveryMethodPickup).OK)

	loyalty.On("RedeemPoints", mock.Anything, "s1", int64(25)).
		Return(&repository.LoyaltyAccount{SessionID: "s1", Points: 75}, nil)
	loyalty.On("RecordOrder", mock.Anything, "s1", mock.Anything, mock.Anything).
		Return(&repository.LoyaltyAccount{SessionID: "s1", OrdersCount: 1, TotalSpent: decimal.NewFromInt(75)}, nil)
	orders.On("NextSequence", mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil)
	orders.On("TrimSession", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	draft, result, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 25)
	require.NoError(t, err)
	require.True(t, result.OK)

	assert.Equal(t, "25", draft.Totals.LoyaltyDiscount.String())
	assert.Equal(t, "75", draft.Totals.Total.String())
	loyalty.AssertExpectations(t)
}

func TestCheckout_InsufficientPoints(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	loyalty := new(mocks.MockLoyaltyRepositoryInterface)
	svc.loyalty = loyalty
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")

	loyalty.On("RedeemPoints", mock.Anything, "s1", int64(500)).
		Return(nil, repository.ErrInsufficientPoints)

	draft, result, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 500)
	require.NoError(t, err)
	assert.Nil(t, draft)
	assert.False(t, result.OK)
	assert.Equal(t, model.ReasonInsufficientPoints, result.Reason)

	// The cart survives a rejected checkout
	assert.False(t, store.Get(ctx, "s1").IsEmpty())
	orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCheckout_RefundsRedemptionWhenSequenceFails(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	loyalty := new(mocks.MockLoyaltyRepositoryInterface)
	svc.loyalty = loyalty
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")

	loyalty.On("RedeemPoints", mock.Anything, "s1", int64(25)).
		Return(&repository.LoyaltyAccount{SessionID: "s1", Points: 75}, nil)
	loyalty.On("RefundPoints", mock.Anything, "s1", int64(25)).Return(nil)
	orders.On("NextSequence", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	draft, _, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 25)
	require.Error(t, err)
	assert.Nil(t, draft)

	// The debited points come back when no order was created
	loyalty.AssertExpectations(t)
	orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCheckout_RefundsRedemptionWhenInsertFails(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	loyalty := new(mocks.MockLoyaltyRepositoryInterface)
	svc.loyalty = loyalty
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")

	loyalty.On("RedeemPoints", mock.Anything, "s1", int64(25)).
		Return(&repository.LoyaltyAccount{SessionID: "s1", Points: 75}, nil)
	loyalty.On("RefundPoints", mock.Anything, "s1", int64(25)).Return(nil)
	orders.On("NextSequence", mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("Insert", mock.Anything, mock.Anything).Return(assert.AnError)

	draft, _, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 25)
	require.Error(t, err)
	assert.Nil(t, draft)

	// The cart survives a failed checkout
	assert.False(t, store.Get(ctx, "s1").IsEmpty())
	loyalty.AssertExpectations(t)
}

func TestCheckout_AutoVIPPromotion(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	loyalty := new(mocks.MockLoyaltyRepositoryInterface)
	svc.loyalty = loyalty
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")

	orders.On("NextSequence", mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil)
	orders.On("TrimSession", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// Third completed order crosses the VIP threshold
	loyalty.On("RecordOrder", mock.Anything, "s1", mock.Anything, mock.Anything).
		Return(&repository.LoyaltyAccount{SessionID: "s1", OrdersCount: VIPMinOrders, TotalSpent: decimal.NewFromInt(420)}, nil)
	loyalty.On("SetVIP", mock.Anything, "s1", true).Return(nil)

	_, result, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 0)
	require.NoError(t, err)
	require.True(t, result.OK)

	loyalty.AssertExpectations(t)
	assert.True(t, store.Get(ctx, "s1").VIP)
}

func TestCheckout_NoPromotionForExistingVIPAccount(t *testing.T) {
	store, orders, svc := checkoutFixture(t)
	loyalty := new(mocks.MockLoyaltyRepositoryInterface)
	svc.loyalty = loyalty
	ctx := context.Background()

	_, _ = store.AddLine(ctx, "s1", testMenuItem("1", 100), nil, 1, "")

	orders.On("NextSequence", mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil)
	orders.On("TrimSession", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	loyalty.On("RecordOrder", mock.Anything, "s1", mock.Anything, mock.Anything).
		Return(&repository.LoyaltyAccount{SessionID: "s1", OrdersCount: 10, TotalSpent: decimal.NewFromInt(5000), VIP: true}, nil)

	_, result, err := svc.Checkout(ctx, "s1", testCustomer(), "cash", 0)
	require.NoError(t, err)
	require.True(t, result.OK)

	loyalty.AssertNotCalled(t, "SetVIP", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_OrdersNotConfigured(t *testing.T) {
	store := newTestStore()
	pricer := NewPricer(NewCouponRegistry(), NewZoneRegistry())
	svc := NewCheckoutService(store, pricer, nil, nil)

	_, _, err := svc.Checkout(context.Background(), "s1", testCustomer(), "cash", 0)
	assert.ErrorIs(t, err, ErrOrdersNotConfigured)
}

func TestCheckout_History(t *testing.T) {
	_, orders, svc := checkoutFixture(t)

	stored := []model.OrderDraft{{OrderNumber: "LK-260831-0002"}, {OrderNumber: "LK-260831-0001"}}
	orders.On("ListBySession", mock.Anything, "s1", 10).Return(stored, nil)

	history, err := svc.History(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Equal(t, stored, history)

	// Out-of-range limits fall back to the configured cap
	orders.On("ListBySession", mock.Anything, "s2", DefaultHistoryLimit).Return(nil, nil)
	_, err = svc.History(context.Background(), "s2", 0)
	require.NoError(t, err)
	_, err = svc.History(context.Background(), "s2", 999)
	require.NoError(t, err)

	orders.AssertExpectations(t)
}

func TestCheckout_Order(t *testing.T) {
	_, orders, svc := checkoutFixture(t)

	want := &model.OrderDraft{OrderNumber: "LK-260831-0007"}
	orders.On("Get", mock.Anything, "LK-260831-0007").Return(want, nil)

	got, err := svc.Order(context.Background(), "LK-260831-0007")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
