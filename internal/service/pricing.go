package service

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// DefaultFallbackDeliveryFee is charged when a cart references a zone
// that is not configured.
var DefaultFallbackDeliveryFee = decimal.NewFromInt(40)

// DefaultZones returns the built-in delivery zone table used until an
// operator-managed configuration replaces it.
func DefaultZones() []model.DeliveryZone {
	fee := decimal.NewFromInt(40)
	threshold := decimal.NewFromInt(800)
	return []model.DeliveryZone{
		{Key: "jerusalem", Name: "Jerusalem", FlatFee: fee, FreeThresholdSubtotal: threshold, EstimatedTime: "45-60 min", Active: true},
		{Key: "mevasseret", Name: "Mevasseret Zion", FlatFee: fee, FreeThresholdSubtotal: threshold, EstimatedTime: "50-65 min", Active: true},
		{Key: "surroundings", Name: "Jerusalem surroundings", FlatFee: fee, FreeThresholdSubtotal: threshold, EstimatedTime: "60-75 min", Active: true},
	}
}

// ZoneTable resolves delivery zone keys. Unknown keys are reported so
// pricing can fall back to the default fee instead of failing.
type ZoneTable interface {
	Resolve(key string) (model.DeliveryZone, bool)
	Zones() []model.DeliveryZone
}

// ZoneRegistry is an in-memory ZoneTable, refreshable from the zones
// repository the same way CouponRegistry is.
type ZoneRegistry struct {
	mu        sync.RWMutex
	zones     map[string]model.DeliveryZone
	updatedAt time.Time
	version   uint64
}

// NewZoneRegistry creates a registry seeded with the default zones.
func NewZoneRegistry() *ZoneRegistry {
	r := &ZoneRegistry{zones: make(map[string]model.DeliveryZone)}
	r.Replace(DefaultZones())
	return r
}

// Resolve returns the active zone for the key, if configured.
func (r *ZoneRegistry) Resolve(key string) (model.DeliveryZone, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	zone, ok := r.zones[key]
	if !ok || !zone.Active {
		return model.DeliveryZone{}, false
	}
	return zone, true
}

// Zones returns a snapshot of the active zones.
func (r *ZoneRegistry) Zones() []model.DeliveryZone {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.DeliveryZone, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, z)
	}
	return out
}

// Replace swaps the full zone table.
func (r *ZoneRegistry) Replace(zones []model.DeliveryZone) {
	next := make(map[string]model.DeliveryZone, len(zones))
	for _, z := range zones {
		if z.Key == "" {
			continue
		}
		next[z.Key] = z
	}

	r.mu.Lock()
	r.zones = next
	r.updatedAt = time.Now()
	r.version++
	r.mu.Unlock()
}

// Version increments on every Replace. Consumers caching derived
// results key on it to pick up zone changes.
func (r *ZoneRegistry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// PricingEngine computes order totals from cart state. Implementations
// must be pure: no storage access, no side effects.
type PricingEngine interface {
	Compute(cart *model.Cart) model.Totals
	// ComputeWithRedemption additionally applies an explicit loyalty
	// redemption amount as a discount.
	ComputeWithRedemption(cart *model.Cart, loyaltyRedemption decimal.Decimal) model.Totals
}

// PricingOption configures a Pricer.
type PricingOption func(*Pricer)

// WithFallbackFee overrides the fee charged for unknown zones.
func WithFallbackFee(fee decimal.Decimal) PricingOption {
	return func(p *Pricer) {
		if !fee.IsNegative() {
			p.fallbackFee = fee
		}
	}
}

// Pricer implements PricingEngine against a discount policy and a zone
// table. One instance serves all sessions; it holds no mutable state.
type Pricer struct {
	policy      DiscountPolicy
	zones       ZoneTable
	fallbackFee decimal.Decimal
}

// NewPricer creates a pricing engine.
func NewPricer(policy DiscountPolicy, zones ZoneTable, opts ...PricingOption) *Pricer {
	p := &Pricer{
		policy:      policy,
		zones:       zones,
		fallbackFee: DefaultFallbackDeliveryFee,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Compute returns the full pricing breakdown for the cart.
func (p *Pricer) Compute(cart *model.Cart) model.Totals {
	return p.ComputeWithRedemption(cart, decimal.Zero)
}

// ComputeWithRedemption returns the breakdown with an explicit loyalty
// redemption applied. Coupon eligibility is always re-checked against
// the undiscounted subtotal: a coupon whose minimum is no longer met
// contributes zero without being removed from the cart.
func (p *Pricer) ComputeWithRedemption(cart *model.Cart, loyaltyRedemption decimal.Decimal) model.Totals {
	if cart == nil || cart.IsEmpty() {
		return model.EmptyTotals()
	}

	subtotal := cart.Subtotal()

	vipDiscount := decimal.Zero
	if cart.VIP {
		vipDiscount = subtotal.Mul(p.policy.VIPRate())
	}

	couponDiscount := decimal.Zero
	for _, code := range cart.AppliedCoupons {
		amount, _ := p.policy.Evaluate(code, subtotal)
		couponDiscount = couponDiscount.Add(amount)
	}

	loyaltyDiscount := decimal.Zero
	if loyaltyRedemption.IsPositive() {
		loyaltyDiscount = loyaltyRedemption
	}

	totalDiscounts := vipDiscount.Add(couponDiscount).Add(loyaltyDiscount)
	afterDiscounts := subtotal.Sub(totalDiscounts)
	if afterDiscounts.IsNegative() {
		afterDiscounts = decimal.Zero
	}

	deliveryFee, needsForFree := p.deliveryFee(cart, afterDiscounts)
	total := afterDiscounts.Add(deliveryFee)

	return model.Totals{
		Subtotal:             subtotal,
		VIPDiscount:          vipDiscount,
		CouponDiscount:       couponDiscount,
		LoyaltyDiscount:      loyaltyDiscount,
		TotalDiscounts:       totalDiscounts,
		AfterDiscounts:       afterDiscounts,
		DeliveryFee:          deliveryFee,
		Total:                total,
		PointsEarned:         total.IntPart(),
		ItemCount:            cart.ItemCount(),
		NeedsForFreeDelivery: needsForFree,
	}
}

// deliveryFee applies the delivery rules: pickup and VIP carts are free,
// above-threshold orders are free, otherwise the zone's flat fee applies.
// Unknown zones charge the fallback fee.
func (p *Pricer) deliveryFee(cart *model.Cart, afterDiscounts decimal.Decimal) (fee, needsForFree decimal.Decimal) {
	if cart.DeliveryMethod == model.DeliveryMethodPickup {
		return decimal.Zero, decimal.Zero
	}
	if cart.VIP {
		return decimal.Zero, decimal.Zero
	}

	zone, ok := p.zones.Resolve(cart.DeliveryZone)
	if !ok {
		return p.fallbackFee, decimal.Zero
	}

	if afterDiscounts.GreaterThanOrEqual(zone.FreeThresholdSubtotal) {
		return decimal.Zero, decimal.Zero
	}
	return zone.FlatFee, zone.FreeThresholdSubtotal.Sub(afterDiscounts)
}
