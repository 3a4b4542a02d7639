// Package app provides service initialization.
package app

import (
	"time"

	"github.com/lulukitchen/cart-service/config"
	"github.com/lulukitchen/cart-service/internal/repository"
	"github.com/lulukitchen/cart-service/internal/service"
)

// ServiceComponents holds the cart domain services.
type ServiceComponents struct {
	Registry      *service.CouponRegistry
	Zones         *service.ZoneRegistry
	CartStore     service.CartStore
	Pricer        service.PricingEngine
	Catalog       service.CatalogService
	Checkout      service.CheckoutService
	Loyalty       service.LoyaltyService
	PricingConfig service.PricingConfigService
}

// InitializeServices wires the cart, pricing, catalog, checkout and
// loyalty services. Database components may be nil; the services then
// run on the built-in defaults without persistence.
func InitializeServices(cfg config.CartConfig, db *DatabaseComponents) *ServiceComponents {
	registry := service.NewCouponRegistry()
	zones := service.NewZoneRegistry()

	var storeOpts []service.StoreOption
	if cfg.LineTTL > 0 {
		storeOpts = append(storeOpts, service.WithLineTTL(cfg.LineTTL))
	}

	var catalogOpts []service.CatalogOption
	if cfg.CatalogTTL > 0 {
		catalogOpts = append(catalogOpts, service.WithCatalogTTL(cfg.CatalogTTL))
	}

	var checkoutOpts []service.CheckoutOption
	if cfg.HistoryLimit > 0 {
		checkoutOpts = append(checkoutOpts, service.WithHistoryLimit(cfg.HistoryLimit))
	}

	components := &ServiceComponents{
		Registry: registry,
		Zones:    zones,
	}

	if db != nil {
		components.CartStore = service.NewSessionCartStore(db.CartsRepo, registry, zones, storeOpts...)
		components.Catalog = service.NewCatalogService(db.CatalogRepo, catalogOpts...)
		components.PricingConfig = service.NewPricingConfigService(db.CouponsRepo, db.ZonesRepo, registry, zones)
		components.Loyalty = service.NewLoyaltyService(db.LoyaltyRepo)
	} else {
		components.CartStore = service.NewSessionCartStore(nil, registry, zones, storeOpts...)
		components.Catalog = service.NewCatalogService(nil, catalogOpts...)
		components.PricingConfig = service.NewPricingConfigService(nil, nil, registry, zones)
		components.Loyalty = service.NewLoyaltyService(nil)
	}

	cacheSize := cfg.PricingCacheSize
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cacheTTL := cfg.PricingCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	totalsCache := service.NewShardedCache(cacheSize, cacheTTL, 16)
	components.Pricer = service.NewCachedPricer(service.NewPricer(registry, zones), totalsCache, registry, zones)

	var ordersRepo repository.OrdersRepositoryInterface
	var loyaltyRepo repository.LoyaltyRepositoryInterface
	if db != nil {
		ordersRepo = db.OrdersRepo
		loyaltyRepo = db.LoyaltyRepo
	}
	components.Checkout = service.NewCheckoutService(components.CartStore, components.Pricer, ordersRepo, loyaltyRepo, checkoutOpts...)

	return components
}
