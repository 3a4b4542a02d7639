// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/lulukitchen/cart-service/internal/circuitbreaker"
	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// CartsRepositoryWithCircuitBreaker wraps CartsRepository with circuit breaker protection.
type CartsRepositoryWithCircuitBreaker struct {
	repo           *CartsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartsRepositoryWithCircuitBreaker(repo *CartsRepository, cb *circuitbreaker.CircuitBreaker) *CartsRepositoryWithCircuitBreaker {
	return &CartsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Find loads a cart with circuit breaker protection.
// If circuit is open, returns nil so the session starts an empty cart.
func (r *CartsRepositoryWithCircuitBreaker) Find(ctx context.Context, sessionID string) (*model.Cart, error) {
	var result *model.Cart
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Find(ctx, sessionID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - the in-memory cart stays authoritative
		return nil, nil
	}
	return result, err
}

// Save persists a cart with circuit breaker protection.
// If circuit is open, silently fails (the in-memory cart is authoritative).
func (r *CartsRepositoryWithCircuitBreaker) Save(ctx context.Context, cart *model.Cart) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, cart)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Delete removes a cart with circuit breaker protection.
func (r *CartsRepositoryWithCircuitBreaker) Delete(ctx context.Context, sessionID string) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, sessionID)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CouponsRepositoryWithCircuitBreaker wraps CouponsRepository with circuit breaker protection.
type CouponsRepositoryWithCircuitBreaker struct {
	repo           *CouponsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCouponsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCouponsRepositoryWithCircuitBreaker(repo *CouponsRepository, cb *circuitbreaker.CircuitBreaker) *CouponsRepositoryWithCircuitBreaker {
	return &CouponsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListActive returns active coupons with circuit breaker protection.
// If circuit is open, returns nil so callers fall back to the built-in rules.
func (r *CouponsRepositoryWithCircuitBreaker) ListActive(ctx context.Context) ([]model.DiscountRule, error) {
	var result []model.DiscountRule
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// List returns all coupons with circuit breaker protection.
func (r *CouponsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.DiscountRule, error) {
	var result []model.DiscountRule
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Upsert saves a coupon with circuit breaker protection.
func (r *CouponsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, rule model.DiscountRule, updatedBy string) (*model.DiscountRule, error) {
	var result *model.DiscountRule
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, rule, updatedBy)
		return cbErr
	})
	return result, err
}

// SetActive flips a coupon's active flag with circuit breaker protection.
func (r *CouponsRepositoryWithCircuitBreaker) SetActive(ctx context.Context, code string, active bool, updatedBy string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SetActive(ctx, code, active, updatedBy)
	})
}

// Seed seeds default coupons with circuit breaker protection.
func (r *CouponsRepositoryWithCircuitBreaker) Seed(ctx context.Context, rules []model.DiscountRule) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Seed(ctx, rules)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CouponsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
