// Package service contains the business logic for the cart service.
package service

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// DefaultVIPRate is the flat VIP discount applied to the subtotal.
var DefaultVIPRate = decimal.RequireFromString("0.15")

// DefaultCoupons returns the built-in coupon set used until an
// operator-managed configuration replaces it.
func DefaultCoupons() []model.DiscountRule {
	return []model.DiscountRule{
		{
			Code:             "FIRST10",
			Type:             model.DiscountTypeAmount,
			Value:            decimal.NewFromInt(10),
			MinOrderSubtotal: decimal.NewFromInt(50),
			Description:      "New customer discount",
			Active:           true,
		},
		{
			Code:             "VIP15",
			Type:             model.DiscountTypePercent,
			Value:            decimal.NewFromInt(15),
			MinOrderSubtotal: decimal.Zero,
			Description:      "VIP discount",
			Active:           true,
		},
		{
			Code:             "FAMILY20",
			Type:             model.DiscountTypeAmount,
			Value:            decimal.NewFromInt(20),
			MinOrderSubtotal: decimal.NewFromInt(200),
			Description:      "Family discount",
			Active:           true,
		},
	}
}

// DiscountPolicy resolves coupon codes to discount rules and carries the
// VIP rate. New coupon kinds are added by inserting rules, not by
// branching pricing code.
type DiscountPolicy interface {
	// Lookup returns the active rule for a code. Codes are matched
	// case-insensitively.
	Lookup(code string) (model.DiscountRule, bool)
	// Evaluate returns the discount a code contributes for the given
	// undiscounted subtotal, and whether the code was eligible. Unknown
	// or below-minimum codes contribute zero.
	Evaluate(code string, subtotal decimal.Decimal) (decimal.Decimal, bool)
	// VIPRate is the flat VIP discount rate (e.g. 0.15).
	VIPRate() decimal.Decimal
}

// CouponRegistry is an in-memory DiscountPolicy backed by a rule map.
// It is safe for concurrent use; Replace swaps in a refreshed rule set
// from the coupons repository.
type CouponRegistry struct {
	mu        sync.RWMutex
	rules     map[string]model.DiscountRule
	vipRate   decimal.Decimal
	updatedAt time.Time
	version   uint64
}

// RegistryOption configures a CouponRegistry.
type RegistryOption func(*CouponRegistry)

// WithVIPRate overrides the default VIP discount rate.
func WithVIPRate(rate decimal.Decimal) RegistryOption {
	return func(r *CouponRegistry) {
		if rate.IsPositive() {
			r.vipRate = rate
		}
	}
}

// WithRules seeds the registry with a custom rule set.
func WithRules(rules []model.DiscountRule) RegistryOption {
	return func(r *CouponRegistry) {
		r.Replace(rules)
	}
}

// NewCouponRegistry creates a registry seeded with the default coupons.
func NewCouponRegistry(opts ...RegistryOption) *CouponRegistry {
	r := &CouponRegistry{
		rules:   make(map[string]model.DiscountRule),
		vipRate: DefaultVIPRate,
	}
	r.Replace(DefaultCoupons())

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NormalizeCode upper-cases and trims a coupon code for matching.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the active rule for the code, if any.
func (r *CouponRegistry) Lookup(code string) (model.DiscountRule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[NormalizeCode(code)]
	if !ok || !rule.Active {
		return model.DiscountRule{}, false
	}
	return rule, true
}

// Evaluate returns the discount the code contributes for the subtotal.
func (r *CouponRegistry) Evaluate(code string, subtotal decimal.Decimal) (decimal.Decimal, bool) {
	rule, ok := r.Lookup(code)
	if !ok {
		return decimal.Zero, false
	}
	if !rule.EligibleFor(subtotal) {
		return decimal.Zero, false
	}
	return rule.Amount(subtotal), true
}

// VIPRate returns the configured VIP discount rate.
func (r *CouponRegistry) VIPRate() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.vipRate
}

// Replace swaps the full rule set, normalizing codes as keys.
func (r *CouponRegistry) Replace(rules []model.DiscountRule) {
	next := make(map[string]model.DiscountRule, len(rules))
	for _, rule := range rules {
		rule.Code = NormalizeCode(rule.Code)
		if rule.Code == "" {
			continue
		}
		next[rule.Code] = rule
	}

	r.mu.Lock()
	r.rules = next
	r.updatedAt = time.Now()
	r.version++
	r.mu.Unlock()
}

// Version increments on every Replace. Consumers caching derived
// results key on it to pick up rule changes.
func (r *CouponRegistry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Rules returns a snapshot of the active rules.
func (r *CouponRegistry) Rules() []model.DiscountRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.DiscountRule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	return out
}
