// Package app provides first-run configuration seeding.
package app

import (
	"context"
	"time"

	"github.com/lulukitchen/cart-service/internal/repository"
	"github.com/lulukitchen/cart-service/internal/service"
	"github.com/rs/zerolog/log"
)

// seedDefaultConfiguration writes the built-in coupons, zones, menu and
// extras into empty collections and loads the persisted configuration
// into the in-memory registries.
func seedDefaultConfiguration(
	pricingConfig service.PricingConfigService,
	catalogRepo repository.CatalogRepositoryInterface,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pricingConfig != nil {
		if err := pricingConfig.Seed(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to seed pricing configuration")
		} else {
			log.Info().Msg("Pricing configuration loaded")
		}
	}

	if catalogRepo != nil {
		if err := catalogRepo.Seed(ctx, service.DefaultMenuItems(), service.DefaultExtras()); err != nil {
			return err
		}
		log.Info().Msg("Catalog seeded")
	}

	return nil
}
