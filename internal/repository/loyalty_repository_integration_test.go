//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoyaltyRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLoyaltyRepository(db)

	t.Run("get unknown session returns zeroed account", func(t *testing.T) {
		account, err := repo.Get(ctx, "sess-fresh")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "sess-fresh", account.SessionID)
		assert.Equal(t, int64(0), account.Points)
		assert.Equal(t, 0, account.OrdersCount)
		assert.True(t, account.TotalSpent.IsZero())
		assert.False(t, account.VIP)
	})

	t.Run("record order credits points and spend", func(t *testing.T) {
		account, err := repo.RecordOrder(ctx, "sess-loyal", 170, decimal.NewFromInt(170))
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, int64(170), account.Points)
		assert.Equal(t, 1, account.OrdersCount)
		assert.True(t, account.TotalSpent.Equal(decimal.NewFromInt(170)))
	})

	t.Run("record order accumulates", func(t *testing.T) {
		account, err := repo.RecordOrder(ctx, "sess-loyal", 90, decimal.RequireFromString("89.50"))
		require.NoError(t, err)
		assert.Equal(t, int64(260), account.Points)
		assert.Equal(t, 2, account.OrdersCount)
		assert.True(t, account.TotalSpent.Equal(decimal.RequireFromString("259.50")))

		loaded, err := repo.Get(ctx, "sess-loyal")
		require.NoError(t, err)
		assert.True(t, loaded.TotalSpent.Equal(decimal.RequireFromString("259.50")))
	})

	t.Run("redeem points debits the account", func(t *testing.T) {
		account, err := repo.RedeemPoints(ctx, "sess-loyal", 60)
		require.NoError(t, err)
		assert.Equal(t, int64(200), account.Points)
	})

	t.Run("redeem more than balance fails", func(t *testing.T) {
		account, err := repo.RedeemPoints(ctx, "sess-loyal", 500)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
		assert.Nil(t, account)

		loaded, err := repo.Get(ctx, "sess-loyal")
		require.NoError(t, err)
		assert.Equal(t, int64(200), loaded.Points)
	})

	t.Run("redeem from unknown session fails", func(t *testing.T) {
		_, err := repo.RedeemPoints(ctx, "sess-broke", 1)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	})

	t.Run("refund restores redeemed points", func(t *testing.T) {
		require.NoError(t, repo.RefundPoints(ctx, "sess-loyal", 60))

		loaded, err := repo.Get(ctx, "sess-loyal")
		require.NoError(t, err)
		assert.Equal(t, int64(260), loaded.Points)
	})

	t.Run("set VIP flips the flag", func(t *testing.T) {
		require.NoError(t, repo.SetVIP(ctx, "sess-loyal", true))

		account, err := repo.Get(ctx, "sess-loyal")
		require.NoError(t, err)
		assert.True(t, account.VIP)

		require.NoError(t, repo.SetVIP(ctx, "sess-loyal", false))

		account, err = repo.Get(ctx, "sess-loyal")
		require.NoError(t, err)
		assert.False(t, account.VIP)
	})

	t.Run("set VIP upserts unknown sessions", func(t *testing.T) {
		require.NoError(t, repo.SetVIP(ctx, "sess-new-vip", true))

		account, err := repo.Get(ctx, "sess-new-vip")
		require.NoError(t, err)
		assert.True(t, account.VIP)
		assert.Equal(t, int64(0), account.Points)
	})
}
