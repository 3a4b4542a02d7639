//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/config"
	"github.com/lulukitchen/cart-service/internal/circuitbreaker"
	"github.com/lulukitchen/cart-service/internal/domain/dto"
	"github.com/lulukitchen/cart-service/internal/repository"
	"github.com/lulukitchen/cart-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dbConnections stores MongoDB connections to prevent garbage collection
var dbConnections = make(map[string]*repository.MongoDB)
var dbConnectionsMutex sync.Mutex

func setupAuthIntegrationRouter(dbName string) (*gin.Engine, service.AuthService) {
	gin.SetMode(gin.TestMode)

	uri := getSharedContainerURI()

	// Check if we already have a connection for this database
	dbConnectionsMutex.Lock()
	db, exists := dbConnections[dbName]
	dbConnectionsMutex.Unlock()

	if !exists {
		var err error
		db, err = repository.NewMongoDB(uri, dbName)
		if err != nil {
			panic(err)
		}
		// Store the connection to prevent garbage collection
		dbConnectionsMutex.Lock()
		dbConnections[dbName] = db
		dbConnectionsMutex.Unlock()
	}

	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	authConfig := config.AuthConfig{
		JWTSecretKey:     "test-secret-key",
		JWTRefreshSecret: "test-refresh-secret-key",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
	authService := service.NewAuthService(userRepo, tokenRepo, authConfig)

	logsRepo := repository.NewLogsRepository(db)
	logsCB := circuitbreaker.New(circuitbreaker.DefaultConfig())
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	cfg := newTestRouterConfig()
	cfg.LoggingService = loggingService
	cfg.AuthService = authService

	return NewRouter(NewHealthHandler(), cfg), authService
}

// provisionAdmin creates the first admin account directly at the service
// level, the way an operator bootstraps a deployment. The HTTP register
// route requires an existing admin's token.
func provisionAdmin(t *testing.T, authService service.AuthService, email, password, name string) {
	t.Helper()
	_, _, err := authService.Register(context.Background(), email, password, name)
	require.NoError(t, err)
}

// loginFor runs a login request and returns the decoded token pair.
func loginFor(t *testing.T, router *gin.Engine, email, password string) dto.LoginResponse {
	t.Helper()

	loginBody := dto.LoginRequest{Email: email, Password: password}
	loginBodyBytes, _ := json.Marshal(loginBody)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(loginBodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "login should succeed: %s", w.Body.String())

	var response dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	dataBytes, _ := json.Marshal(response.Data)
	var loginResponse dto.LoginResponse
	require.NoError(t, json.Unmarshal(dataBytes, &loginResponse))
	return loginResponse
}

func TestAuthHandler_Login_Integration(t *testing.T) {
	t.Parallel()

	t.Run("provisioned admin can log in", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, authService := setupAuthIntegrationRouter(dbName)
		provisionAdmin(t, authService, "test@example.com", "password123", "Test User")

		loginResponse := loginFor(t, router, "test@example.com", "password123")
		assert.NotEmpty(t, loginResponse.Token)
		assert.NotEmpty(t, loginResponse.RefreshToken)
		assert.Equal(t, "test@example.com", loginResponse.User.Email)
	})

	t.Run("login with invalid credentials", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, _ := setupAuthIntegrationRouter(dbName)

		loginBody := dto.LoginRequest{
			Email:    "nonexistent@example.com",
			Password: "wrongpassword",
		}
		loginBodyBytes, _ := json.Marshal(loginBody)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(loginBodyBytes))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.True(t, w.Code == http.StatusUnauthorized || w.Code == http.StatusInternalServerError)
	})
}

func TestAuthHandler_Register_Integration(t *testing.T) {
	t.Parallel()

	postRegister := func(router *gin.Engine, token string, body dto.RegisterRequest) *httptest.ResponseRecorder {
		bodyBytes, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("admin registers a new admin", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, authService := setupAuthIntegrationRouter(dbName)
		provisionAdmin(t, authService, "owner@example.com", "password123", "Owner")
		token := loginFor(t, router, "owner@example.com", "password123").Token

		w := postRegister(router, token, dto.RegisterRequest{
			Email:    "newuser@example.com",
			Password: "password123",
			Name:     "New User",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.SuccessResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		dataBytes, _ := json.Marshal(response.Data)
		var loginResponse dto.LoginResponse
		err = json.Unmarshal(dataBytes, &loginResponse)
		require.NoError(t, err)
		assert.NotEmpty(t, loginResponse.Token)
		assert.NotEmpty(t, loginResponse.RefreshToken)
	})

	t.Run("registration without a token is rejected", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, _ := setupAuthIntegrationRouter(dbName)

		w := postRegister(router, "", dto.RegisterRequest{
			Email:    "walkin@example.com",
			Password: "password123",
			Name:     "Walk In",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("duplicate email registration", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, authService := setupAuthIntegrationRouter(dbName)
		provisionAdmin(t, authService, "owner2@example.com", "password123", "Owner")
		token := loginFor(t, router, "owner2@example.com", "password123").Token

		body := dto.RegisterRequest{
			Email:    "duplicate@example.com",
			Password: "password123",
			Name:     "First User",
		}

		w := postRegister(router, token, body)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = postRegister(router, token, body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_RefreshToken_Integration(t *testing.T) {
	t.Parallel()

	t.Run("successful token refresh", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, authService := setupAuthIntegrationRouter(dbName)
		provisionAdmin(t, authService, "refreshtest@example.com", "password123", "Refresh Test")
		loginResponse := loginFor(t, router, "refreshtest@example.com", "password123")

		// Wait for at least 1 second to ensure JWT timestamps differ
		time.Sleep(time.Second)

		// Refresh token is passed in X-Refresh-Token header, not body
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Refresh-Token", loginResponse.RefreshToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var refreshResponse dto.SuccessResponse
		err := json.Unmarshal(w.Body.Bytes(), &refreshResponse)
		require.NoError(t, err)

		dataBytes, _ := json.Marshal(refreshResponse.Data)
		var newTokenPair dto.LoginResponse
		err = json.Unmarshal(dataBytes, &newTokenPair)
		require.NoError(t, err)
		assert.NotEmpty(t, newTokenPair.Token)
		assert.NotEmpty(t, newTokenPair.RefreshToken)
		assert.NotEqual(t, loginResponse.Token, newTokenPair.Token)
	})

	t.Run("refresh with invalid token", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, _ := setupAuthIntegrationRouter(dbName)

		// Refresh token is passed in X-Refresh-Token header, not body
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Refresh-Token", "invalid-refresh-token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout_Integration(t *testing.T) {
	t.Parallel()

	t.Run("successful logout", func(t *testing.T) {
		// Use shared container with unique database name for this subtest
		dbName := sanitizeDBNameForHTTP(t.Name())
		router, authService := setupAuthIntegrationRouter(dbName)
		provisionAdmin(t, authService, "logouttest@example.com", "password123", "Logout Test")
		loginResponse := loginFor(t, router, "logouttest@example.com", "password123")

		// JWT tokens are passed in headers, not body - access token in Authorization header, refresh token in X-Refresh-Token header
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+loginResponse.Token)
		req.Header.Set("X-Refresh-Token", loginResponse.RefreshToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
