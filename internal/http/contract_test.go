//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/internal/domain/dto"
	"github.com/lulukitchen/cart-service/internal/middleware"
	"github.com/lulukitchen/cart-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newContractRouter assembles the routes under test with an in-memory
// service stack, skipping global middleware except what the contract
// requires.
func newContractRouter() *gin.Engine {
	registry := service.NewCouponRegistry()
	zones := service.NewZoneRegistry()
	carts := service.NewSessionCartStore(nil, registry, zones)

	cfg := DefaultRouterConfig()
	cfg.CartStore = carts
	cfg.Pricer = service.NewPricer(registry, zones)
	cfg.Catalog = service.NewCatalogService(nil)
	cfg.Checkout = service.NewCheckoutService(carts, cfg.Pricer, nil, nil)
	cfg.Loyalty = service.NewLoyaltyService(nil)
	cfg.PricingConfig = service.NewPricingConfigService(nil, nil, registry, zones)
	cfg.Zones = zones

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())
	NewHealthHandler().Register(router)

	api := router.Group("/api")
	cartRoutes := NewCartRoutes(&cfg)
	cartRoutes.RegisterPublicRoutes(api)
	cartRoutes.RegisterSessionRoutes(api)

	return router
}

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router := newContractRouter()

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		headers          map[string]string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/cart/lines - Success 200",
			method:         http.MethodPost,
			path:           "/api/cart/lines",
			body:           `{"item_id": "szechuan-beef", "quantity": 2}`,
			headers:        map[string]string{middleware.SessionIDHeader: "sess-contract"},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				// Validate dto.SuccessResponse structure
				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")
				assert.NotNil(t, resp.Data, "Response must include data")

				// Validate CartResponse structure
				payload, ok := resp.Data.(map[string]interface{})
				require.True(t, ok, "Data must be CartResponse")
				assert.Contains(t, payload, "cart")
				assert.Contains(t, payload, "totals")

				cart, ok := payload["cart"].(map[string]interface{})
				require.True(t, ok)
				lines, ok := cart["lines"].([]interface{})
				require.True(t, ok)
				require.Len(t, lines, 1)

				line, ok := lines[0].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "szechuan-beef", line["menu_item_id"])
				assert.Equal(t, float64(2), line["quantity"])
				assert.Equal(t, "65", line["unit_price"])

				totals, ok := payload["totals"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "130", totals["subtotal"])
				assert.Contains(t, totals, "delivery_fee")
				assert.Contains(t, totals, "total")
				assert.Contains(t, totals, "points_earned")
			},
		},
		{
			name:           "POST /api/cart/lines - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/cart/lines",
			body:           `invalid json`,
			headers:        map[string]string{middleware.SessionIDHeader: "sess-contract"},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "POST /api/cart/lines - Error 400 missing session",
			method:         http.MethodPost,
			path:           "/api/cart/lines",
			body:           `{"item_id": "szechuan-beef"}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
			},
		},
		{
			name:           "POST /api/cart/coupons - Rejection 422",
			method:         http.MethodPost,
			path:           "/api/cart/coupons",
			body:           `{"code": "FAMILY20"}`,
			headers:        map[string]string{middleware.SessionIDHeader: "sess-empty"},
			expectedStatus: http.StatusUnprocessableEntity,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				// Rejections carry a machine-readable reason
				assert.Equal(t, dto.ErrCodeRejected, resp.Error)
				assert.Equal(t, "coupon_minimum_not_met", resp.Reason)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "GET /api/menu - Success 200",
			method:         http.MethodGet,
			path:           "/api/menu",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				payload, ok := resp.Data.(map[string]interface{})
				require.True(t, ok)
				assert.Contains(t, payload, "items")
				assert.Contains(t, payload, "count")

				items, ok := payload["items"].([]interface{})
				require.True(t, ok)
				assert.NotEmpty(t, items)

				item, ok := items[0].(map[string]interface{})
				require.True(t, ok)
				assert.Contains(t, item, "id")
				assert.Contains(t, item, "name")
				assert.Contains(t, item, "base_price")
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Equal(t, "ok", resp["status"])
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Contains(t, resp, "checks")
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			// Validate X-Request-ID header
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// TestAPI_ResponseSchema validates response schemas match the contract.
func TestAPI_ResponseSchema(t *testing.T) {
	router := newContractRouter()

	t.Run("SuccessResponse schema validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/lines", bytes.NewReader([]byte(`{"item_id": "mapo-tofu", "quantity": 1}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.SessionIDHeader, "sess-schema")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.SuccessResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		// Validate all required fields
		assert.NotEmpty(t, resp.RequestID)
		assert.NotZero(t, resp.Timestamp)
		assert.NotNil(t, resp.Data)

		// Validate data is CartResponse
		dataBytes, _ := json.Marshal(resp.Data)
		var cartResp dto.CartResponse
		err = json.Unmarshal(dataBytes, &cartResp)
		require.NoError(t, err)

		require.NotNil(t, cartResp.Cart)
		assert.Equal(t, "sess-schema", cartResp.Cart.SessionID)
		assert.Len(t, cartResp.Cart.Lines, 1)
		assert.Equal(t, "48", cartResp.Totals.Subtotal.String())
		assert.Equal(t, 1, cartResp.Totals.ItemCount)
	})

	t.Run("ErrorResponse schema validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/lines", bytes.NewReader([]byte(`{"item_id": "no-such-dish"}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.SessionIDHeader, "sess-schema")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		// Validate error response structure
		assert.Equal(t, dto.ErrCodeRejected, resp.Error)
		assert.Equal(t, "item_not_found", resp.Reason)
		assert.NotEmpty(t, resp.Message)
		assert.NotEmpty(t, resp.RequestID)
		assert.NotZero(t, resp.Timestamp)
	})
}

// TestAPI_Headers validates required headers are present.
func TestAPI_Headers(t *testing.T) {
	router := newContractRouter()

	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		sessionID       string
		expectedHeaders map[string]string
	}{
		{
			name:      "X-Request-ID header present",
			method:    http.MethodGet,
			path:      "/api/cart",
			sessionID: "sess-headers",
			expectedHeaders: map[string]string{
				"X-Request-ID": "",
			},
		},
		{
			name:   "Health endpoint headers",
			method: http.MethodGet,
			path:   "/healthz",
			expectedHeaders: map[string]string{
				"X-Request-ID": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			if tt.sessionID != "" {
				req.Header.Set(middleware.SessionIDHeader, tt.sessionID)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			for headerName, expectedValue := range tt.expectedHeaders {
				actualValue := w.Header().Get(headerName)
				if expectedValue == "" {
					assert.NotEmpty(t, actualValue, "Header %s must be present", headerName)
				} else {
					assert.Equal(t, expectedValue, actualValue, "Header %s mismatch", headerName)
				}
			}
		})
	}
}
