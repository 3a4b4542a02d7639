//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

func TestZonesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewZonesRepository(db)

	t.Run("list when empty", func(t *testing.T) {
		zones, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, zones)
	})

	t.Run("seed populates empty collection", func(t *testing.T) {
		seed := []model.DeliveryZone{
			{
				Key:                   "jerusalem",
				Name:                  "Jerusalem",
				FlatFee:               decimal.NewFromInt(40),
				FreeThresholdSubtotal: decimal.NewFromInt(800),
				EstimatedTime:         "45-60 min",
				Active:                true,
			},
			{
				Key:                   "mevasseret",
				Name:                  "Mevasseret Zion",
				FlatFee:               decimal.NewFromInt(40),
				FreeThresholdSubtotal: decimal.NewFromInt(800),
				Active:                true,
			},
			{
				Key:     "closed-zone",
				Name:    "Closed Zone",
				FlatFee: decimal.NewFromInt(60),
				Active:  false,
			},
		}
		require.NoError(t, repo.Seed(ctx, seed))

		zones, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, zones, 3)
	})

	t.Run("list active filters inactive zones", func(t *testing.T) {
		zones, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, zones, 2)
		for _, zone := range zones {
			assert.True(t, zone.Active)
		}
	})

	t.Run("list is sorted by key", func(t *testing.T) {
		zones, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, zones, 3)
		assert.Equal(t, "closed-zone", zones[0].Key)
		assert.Equal(t, "jerusalem", zones[1].Key)
		assert.Equal(t, "mevasseret", zones[2].Key)
	})

	t.Run("seed is a no-op when populated", func(t *testing.T) {
		require.NoError(t, repo.Seed(ctx, []model.DeliveryZone{
			{Key: "tel-aviv", Name: "Tel Aviv", FlatFee: decimal.NewFromInt(80), Active: true},
		}))

		zones, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, zones, 3)
	})

	t.Run("upsert inserts a new zone", func(t *testing.T) {
		saved, err := repo.Upsert(ctx, model.DeliveryZone{
			Key:                   "surroundings",
			Name:                  "Surroundings",
			FlatFee:               decimal.NewFromInt(40),
			FreeThresholdSubtotal: decimal.NewFromInt(800),
			Active:                true,
		}, "admin@test")
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "surroundings", saved.Key)
		assert.True(t, saved.FlatFee.Equal(decimal.NewFromInt(40)))
		assert.False(t, saved.UpdatedAt.IsZero())
	})

	t.Run("upsert replaces an existing zone", func(t *testing.T) {
		saved, err := repo.Upsert(ctx, model.DeliveryZone{
			Key:                   "surroundings",
			Name:                  "Greater Jerusalem",
			FlatFee:               decimal.NewFromInt(50),
			FreeThresholdSubtotal: decimal.NewFromInt(900),
			Active:                false,
		}, "admin@test")
		require.NoError(t, err)
		assert.Equal(t, "Greater Jerusalem", saved.Name)
		assert.True(t, saved.FlatFee.Equal(decimal.NewFromInt(50)))
		assert.False(t, saved.Active)

		zones, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, zones, 4)
	})
}
