// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/config"
	"github.com/lulukitchen/cart-service/internal/http"
	"github.com/rs/zerolog/log"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize cart domain services
	serviceComponents := InitializeServices(cfg.Cart, dbComponents)

	// Seed default coupons, zones and catalog on first run
	if dbComponents != nil {
		if err := seedDefaultConfiguration(serviceComponents.PricingConfig, dbComponents.CatalogRepo); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default configuration")
		}
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
