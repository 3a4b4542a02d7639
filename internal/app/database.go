// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/lulukitchen/cart-service/config"
	"github.com/lulukitchen/cart-service/internal/circuitbreaker"
	"github.com/lulukitchen/cart-service/internal/repository"
	"github.com/lulukitchen/cart-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CartsRepo           repository.CartsRepositoryInterface
	CouponsRepo         repository.CouponsRepositoryInterface
	ZonesRepo           repository.ZonesRepositoryInterface
	CatalogRepo         repository.CatalogRepositoryInterface
	OrdersRepo          repository.OrdersRepositoryInterface
	LoyaltyRepo         repository.LoyaltyRepositoryInterface
	LoggingService      service.LoggingService
	CartsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
	UserRepo            repository.UserRepositoryInterface
	TokenRepo           repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	couponsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-coupons",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	cartsRepo := repository.NewCartsRepository(db)
	cartsRepoWithCB := repository.NewCartsRepositoryWithCircuitBreaker(cartsRepo, cartsCB)

	couponsRepo := repository.NewCouponsRepository(db)
	couponsRepoWithCB := repository.NewCouponsRepositoryWithCircuitBreaker(couponsRepo, couponsCB)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	return &DatabaseComponents{
		CartsRepo:           cartsRepoWithCB,
		CouponsRepo:         couponsRepoWithCB,
		ZonesRepo:           repository.NewZonesRepository(db),
		CatalogRepo:         repository.NewCatalogRepository(db),
		OrdersRepo:          repository.NewOrdersRepository(db),
		LoyaltyRepo:         repository.NewLoyaltyRepository(db),
		LoggingService:      loggingService,
		CartsCircuitBreaker: cartsCB,
		LogsCircuitBreaker:  logsCB,
		UserRepo:            userRepo,
		TokenRepo:           tokenRepo,
	}
}
