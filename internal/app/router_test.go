//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/lulukitchen/cart-service/config"
	"github.com/lulukitchen/cart-service/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router with in-memory services only",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.HealthHandler)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.NotNil(t, components.Config.CartStore)
				assert.NotNil(t, components.Config.Checkout)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: &DatabaseComponents{
				CartsRepo:      new(mocks.MockCartsRepositoryInterface),
				LoggingService: mocks.NewMockLoggingService(t),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
		{
			name:         "creates router with nil dbComponents",
			dbComponents: nil,
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.Config.LoggingService)
				assert.Nil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates router with auth service when user repo exists",
			dbComponents: &DatabaseComponents{
				UserRepo:  new(mocks.MockUserRepositoryInterface),
				TokenRepo: new(mocks.MockTokenRepositoryInterface),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
				Auth: config.AuthConfig{
					JWTSecretKey:    "test-secret",
					AccessTokenTTL:  15 * time.Minute,
					RefreshTokenTTL: 24 * time.Hour,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.AuthService)
			},
		},
		{
			name: "creates router without auth service when user repo is nil",
			dbComponents: &DatabaseComponents{
				UserRepo: nil,
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Nil(t, components.Config.AuthService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(config.CartConfig{}, tt.dbComponents)
			components := InitializeRouter(services, tt.dbComponents, tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}
