package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lulukitchen/cart-service/internal/mocks"
	"github.com/lulukitchen/cart-service/internal/repository"
)

func TestLoyaltyService_Account(t *testing.T) {
	t.Run("returns the account", func(t *testing.T) {
		mockRepo := new(mocks.MockLoyaltyRepositoryInterface)
		mockRepo.On("Get", mock.Anything, "sess-1").Return(&repository.LoyaltyAccount{
			SessionID:   "sess-1",
			Points:      340,
			OrdersCount: 2,
			TotalSpent:  decimal.NewFromInt(520),
			VIP:         true,
		}, nil)

		svc := NewLoyaltyService(mockRepo)
		account, err := svc.Account(context.Background(), "sess-1")

		require.NoError(t, err)
		assert.Equal(t, int64(340), account.Points)
		assert.True(t, account.VIP)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewLoyaltyService(nil)
		_, err := svc.Account(context.Background(), "sess-1")
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

func TestLoyaltyService_Redeem(t *testing.T) {
	t.Run("debits points", func(t *testing.T) {
		mockRepo := new(mocks.MockLoyaltyRepositoryInterface)
		mockRepo.On("RedeemPoints", mock.Anything, "sess-1", int64(50)).Return(&repository.LoyaltyAccount{
			SessionID: "sess-1",
			Points:    290,
		}, nil)

		svc := NewLoyaltyService(mockRepo)
		account, err := svc.Redeem(context.Background(), "sess-1", 50)

		require.NoError(t, err)
		assert.Equal(t, int64(290), account.Points)
		mockRepo.AssertExpectations(t)
	})

	t.Run("insufficient points", func(t *testing.T) {
		mockRepo := new(mocks.MockLoyaltyRepositoryInterface)
		mockRepo.On("RedeemPoints", mock.Anything, "sess-1", int64(500)).Return(nil, repository.ErrInsufficientPoints)

		svc := NewLoyaltyService(mockRepo)
		_, err := svc.Redeem(context.Background(), "sess-1", 500)

		assert.ErrorIs(t, err, repository.ErrInsufficientPoints)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewLoyaltyService(nil)
		_, err := svc.Redeem(context.Background(), "sess-1", 10)
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}
