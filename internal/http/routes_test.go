package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Tests for AuthRoutes

func TestNewAuthRoutes(t *testing.T) {
	mockAuthService := mocks.NewMockAuthService(t)

	routes := NewAuthRoutes(mockAuthService)

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.handler)
}

func TestAuthRoutes_RegisterPublicRoutes(t *testing.T) {
	mockAuthService := mocks.NewMockAuthService(t)
	routes := NewAuthRoutes(mockAuthService)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	// Verify routes are registered by checking if they respond
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/refresh"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Should not return 404 - route exists
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}

	// Registration is deliberately absent from the public surface
	t.Run("register is not public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthRoutes_RegisterProtectedRoutes(t *testing.T) {
	mockAuthService := mocks.NewMockAuthService(t)
	routes := NewAuthRoutes(mockAuthService)

	router := gin.New()
	api := router.Group("/api")

	cfg := &RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}

	routes.RegisterProtectedRoutes(api, cfg)

	// Logout and register live behind JWT auth
	for _, path := range []string{"/api/auth/logout", "/api/auth/register"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Route exists; without a token the guard rejects it
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRoutes_GetProtectedGroup(t *testing.T) {
	tests := []struct {
		name       string
		rateLimit  int
		rateWindow time.Duration
	}{
		{
			name:       "with rate limiting",
			rateLimit:  100,
			rateWindow: time.Minute,
		},
		{
			name:       "without rate limiting",
			rateLimit:  0,
			rateWindow: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := mocks.NewMockAuthService(t)
			routes := NewAuthRoutes(mockAuthService)

			router := gin.New()
			api := router.Group("/api")

			cfg := &RouterConfig{
				RateLimit:  tt.rateLimit,
				RateWindow: tt.rateWindow,
			}

			protected := routes.GetProtectedGroup(api, cfg)

			assert.NotNil(t, protected)
		})
	}
}

// Tests for CartRoutes

func TestNewCartRoutes(t *testing.T) {
	cfg := newTestRouterConfig()

	routes := NewCartRoutes(&cfg)

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.cartHandler)
	assert.NotNil(t, routes.checkoutHandler)
	assert.NotNil(t, routes.catalogHandler)
}

func TestCartRoutes_RegisterPublicRoutes(t *testing.T) {
	cfg := newTestRouterConfig()
	routes := NewCartRoutes(&cfg)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterPublicRoutes(api)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/menu"},
		{http.MethodGet, "/api/extras"},
		{http.MethodGet, "/api/zones"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestCartRoutes_RegisterSessionRoutes(t *testing.T) {
	cfg := newTestRouterConfig()
	routes := NewCartRoutes(&cfg)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterSessionRoutes(api)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodDelete, "/api/cart"},
		{http.MethodPost, "/api/cart/lines"},
		{http.MethodPatch, "/api/cart/lines/some-line"},
		{http.MethodDelete, "/api/cart/lines/some-line"},
		{http.MethodPost, "/api/cart/coupons"},
		{http.MethodDelete, "/api/cart/coupons/FIRST10"},
		{http.MethodPut, "/api/cart/delivery"},
		{http.MethodPut, "/api/cart/vip"},
		{http.MethodPost, "/api/checkout"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/orders/LK-250830-0001"},
		{http.MethodGet, "/api/loyalty"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			// Without the session header every route rejects with 400
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// Tests for AdminRoutes

func TestAdminRoutes_RegisterProtectedRoutes(t *testing.T) {
	cfg := newTestRouterConfig()
	routes := NewAdminRoutes(&cfg)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterProtectedRoutes(api, &cfg)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/coupons"},
		{http.MethodPut, "/api/admin/coupons"},
		{http.MethodPatch, "/api/admin/coupons/FIRST10"},
		{http.MethodGet, "/api/admin/zones"},
		{http.MethodPut, "/api/admin/zones"},
		{http.MethodGet, "/api/admin/menu"},
		{http.MethodPut, "/api/admin/menu"},
		{http.MethodPut, "/api/admin/extras"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Route exists even though the request itself may fail
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}
