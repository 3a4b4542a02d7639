//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

func TestTokenRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewTokenRepository(db.Database)
	userID := primitive.NewObjectID()

	t.Run("create token", func(t *testing.T) {
		token := &model.Token{
			UserID:    userID,
			Token:     "refresh-token-1",
			Type:      "refresh",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		err := repo.Create(ctx, token)
		require.NoError(t, err)
		assert.False(t, token.ID.IsZero())
	})

	t.Run("find by token", func(t *testing.T) {
		token, err := repo.FindByToken(ctx, "refresh-token-1")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, userID, token.UserID)
		assert.Equal(t, "refresh", token.Type)
	})

	t.Run("find unknown token returns nil", func(t *testing.T) {
		token, err := repo.FindByToken(ctx, "missing-token")
		assert.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("find by user ID and type", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.Token{
			UserID:    userID,
			Token:     "refresh-token-2",
			Type:      "refresh",
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		tokens, err := repo.FindByUserID(ctx, userID, "refresh")
		require.NoError(t, err)
		assert.Len(t, tokens, 2)
	})

	t.Run("blacklist check", func(t *testing.T) {
		blacklisted, err := repo.IsBlacklisted(ctx, "revoked-access-token")
		require.NoError(t, err)
		assert.False(t, blacklisted)

		require.NoError(t, repo.Create(ctx, &model.Token{
			UserID:    userID,
			Token:     "revoked-access-token",
			Type:      "blacklist",
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		blacklisted, err = repo.IsBlacklisted(ctx, "revoked-access-token")
		require.NoError(t, err)
		assert.True(t, blacklisted)

		// A live refresh token is not blacklisted
		blacklisted, err = repo.IsBlacklisted(ctx, "refresh-token-1")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("delete by token", func(t *testing.T) {
		require.NoError(t, repo.DeleteByToken(ctx, "refresh-token-2"))

		token, err := repo.FindByToken(ctx, "refresh-token-2")
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("delete by user ID and type", func(t *testing.T) {
		require.NoError(t, repo.DeleteByUserID(ctx, userID, "refresh"))

		tokens, err := repo.FindByUserID(ctx, userID, "refresh")
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("cleanup expired", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.Token{
			UserID:    userID,
			Token:     "expired-token",
			Type:      "refresh",
			ExpiresAt: time.Now().Add(-time.Hour),
		}))

		require.NoError(t, repo.CleanupExpired(ctx))

		token, err := repo.FindByToken(ctx, "expired-token")
		require.NoError(t, err)
		assert.Nil(t, token)
	})
}
