package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// PricingConfigService manages the persisted coupon and zone
// configuration and keeps the in-memory registries in sync with it.
type PricingConfigService interface {
	Coupons(ctx context.Context, limit int) ([]model.DiscountRule, error)
	UpsertCoupon(ctx context.Context, rule model.DiscountRule, updatedBy string) (*model.DiscountRule, error)
	SetCouponActive(ctx context.Context, code string, active bool, updatedBy string) error
	Zones(ctx context.Context) ([]model.DeliveryZone, error)
	UpsertZone(ctx context.Context, zone model.DeliveryZone, updatedBy string) (*model.DeliveryZone, error)
	Refresh(ctx context.Context) error
	Seed(ctx context.Context) error
}

// PricingConfigServiceImpl implements PricingConfigService.
type PricingConfigServiceImpl struct {
	couponsRepo repository.CouponsRepositoryInterface
	zonesRepo   repository.ZonesRepositoryInterface
	registry    *CouponRegistry
	zones       *ZoneRegistry
}

// NewPricingConfigService creates a new pricing config service. The
// repositories may be nil; the registries then keep the built-in
// defaults.
func NewPricingConfigService(couponsRepo repository.CouponsRepositoryInterface, zonesRepo repository.ZonesRepositoryInterface, registry *CouponRegistry, zones *ZoneRegistry) *PricingConfigServiceImpl {
	return &PricingConfigServiceImpl{
		couponsRepo: couponsRepo,
		zonesRepo:   zonesRepo,
		registry:    registry,
		zones:       zones,
	}
}

// Coupons lists configured coupons including inactive ones.
func (s *PricingConfigServiceImpl) Coupons(ctx context.Context, limit int) ([]model.DiscountRule, error) {
	if s.couponsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.couponsRepo.List(ctx, limit)
}

// UpsertCoupon saves a coupon and refreshes the registry.
func (s *PricingConfigServiceImpl) UpsertCoupon(ctx context.Context, rule model.DiscountRule, updatedBy string) (*model.DiscountRule, error) {
	if s.couponsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	rule.Code = NormalizeCode(rule.Code)
	saved, err := s.couponsRepo.Upsert(ctx, rule, updatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.refreshCoupons(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to refresh coupon registry after upsert")
	}
	return saved, nil
}

// SetCouponActive flips a coupon's active flag and refreshes the registry.
func (s *PricingConfigServiceImpl) SetCouponActive(ctx context.Context, code string, active bool, updatedBy string) error {
	if s.couponsRepo == nil {
		return ErrRepositoryNotConfigured
	}

	if err := s.couponsRepo.SetActive(ctx, NormalizeCode(code), active, updatedBy); err != nil {
		return err
	}

	if err := s.refreshCoupons(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to refresh coupon registry after update")
	}
	return nil
}

// Zones lists configured delivery zones including inactive ones.
func (s *PricingConfigServiceImpl) Zones(ctx context.Context) ([]model.DeliveryZone, error) {
	if s.zonesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.zonesRepo.List(ctx)
}

// UpsertZone saves a delivery zone and refreshes the registry.
func (s *PricingConfigServiceImpl) UpsertZone(ctx context.Context, zone model.DeliveryZone, updatedBy string) (*model.DeliveryZone, error) {
	if s.zonesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	saved, err := s.zonesRepo.Upsert(ctx, zone, updatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.refreshZones(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to refresh zone registry after upsert")
	}
	return saved, nil
}

// Refresh loads the active configuration into both registries.
func (s *PricingConfigServiceImpl) Refresh(ctx context.Context) error {
	if err := s.refreshCoupons(ctx); err != nil {
		return err
	}
	return s.refreshZones(ctx)
}

func (s *PricingConfigServiceImpl) refreshCoupons(ctx context.Context) error {
	if s.couponsRepo == nil {
		return nil
	}

	rules, err := s.couponsRepo.ListActive(ctx)
	if err != nil {
		return err
	}
	// An open circuit returns nil rules; keep the current registry.
	if rules != nil {
		s.registry.Replace(rules)
	}
	return nil
}

func (s *PricingConfigServiceImpl) refreshZones(ctx context.Context) error {
	if s.zonesRepo == nil {
		return nil
	}

	zones, err := s.zonesRepo.ListActive(ctx)
	if err != nil {
		return err
	}
	if zones != nil {
		s.zones.Replace(zones)
	}
	return nil
}

// Seed writes the built-in coupons and zones into empty collections.
func (s *PricingConfigServiceImpl) Seed(ctx context.Context) error {
	if s.couponsRepo != nil {
		if err := s.couponsRepo.Seed(ctx, DefaultCoupons()); err != nil {
			return err
		}
	}
	if s.zonesRepo != nil {
		if err := s.zonesRepo.Seed(ctx, DefaultZones()); err != nil {
			return err
		}
	}
	return s.Refresh(ctx)
}
