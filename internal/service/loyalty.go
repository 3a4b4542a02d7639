package service

import (
	"context"

	"github.com/lulukitchen/cart-service/internal/repository"
)

// LoyaltyService exposes a session's loyalty standing.
type LoyaltyService interface {
	Account(ctx context.Context, sessionID string) (*repository.LoyaltyAccount, error)
	Redeem(ctx context.Context, sessionID string, points int64) (*repository.LoyaltyAccount, error)
}

// LoyaltyServiceImpl implements LoyaltyService.
type LoyaltyServiceImpl struct {
	loyaltyRepo repository.LoyaltyRepositoryInterface
}

// NewLoyaltyService creates a new loyalty service.
func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepositoryInterface) *LoyaltyServiceImpl {
	return &LoyaltyServiceImpl{
		loyaltyRepo: loyaltyRepo,
	}
}

// Account returns the loyalty account for a session.
func (s *LoyaltyServiceImpl) Account(ctx context.Context, sessionID string) (*repository.LoyaltyAccount, error) {
	if s.loyaltyRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.loyaltyRepo.Get(ctx, sessionID)
}

// Redeem debits points from the account outside a checkout, for
// point-for-discount flows handled by the presentation layer.
func (s *LoyaltyServiceImpl) Redeem(ctx context.Context, sessionID string, points int64) (*repository.LoyaltyAccount, error) {
	if s.loyaltyRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.loyaltyRepo.RedeemPoints(ctx, sessionID, points)
}
