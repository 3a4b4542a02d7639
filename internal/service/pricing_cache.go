package service

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/metrics"
	"github.com/lulukitchen/cart-service/internal/service/cache"
)

// CartFingerprint returns a stable key for everything pricing depends
// on. Two carts with the same fingerprint produce the same totals.
func CartFingerprint(cart *model.Cart) string {
	h := fnv.New64a()

	for _, line := range cart.Lines {
		_, _ = fmt.Fprintf(h, "%s:%d:%s;", line.LineID, line.Quantity, line.UnitPrice.String())
	}
	_, _ = fmt.Fprintf(h, "|c:")
	for _, code := range cart.AppliedCoupons {
		_, _ = fmt.Fprintf(h, "%s;", code)
	}
	_, _ = fmt.Fprintf(h, "|z:%s|m:%s|v:%t", cart.DeliveryZone, cart.DeliveryMethod, cart.VIP)

	return fmt.Sprintf("%016x", h.Sum64())
}

// CachedPricer wraps a PricingEngine with a fingerprint-keyed totals
// cache. Cache keys carry the coupon and zone registry versions, so
// an admin rule change invalidates every cached entry at once.
// Redemption-bearing computations bypass the cache since the
// redemption amount is not part of the fingerprint.
type CachedPricer struct {
	inner   PricingEngine
	cache   cache.CacheWithMetrics
	coupons *CouponRegistry
	zones   *ZoneRegistry
}

// NewCachedPricer creates a caching wrapper around the given engine.
func NewCachedPricer(inner PricingEngine, totalsCache cache.CacheWithMetrics, coupons *CouponRegistry, zones *ZoneRegistry) *CachedPricer {
	return &CachedPricer{
		inner:   inner,
		cache:   totalsCache,
		coupons: coupons,
		zones:   zones,
	}
}

func (p *CachedPricer) cacheKey(cart *model.Cart) string {
	return fmt.Sprintf("%s:%d:%d", CartFingerprint(cart), p.coupons.Version(), p.zones.Version())
}

// Compute returns cached totals when the cart fingerprint is known.
func (p *CachedPricer) Compute(cart *model.Cart) model.Totals {
	key := p.cacheKey(cart)
	if totals, ok := p.cache.Get(key); ok {
		return totals
	}

	start := time.Now()
	totals := p.inner.Compute(cart)
	metrics.RecordPricingComputation(time.Since(start), "success")

	p.cache.Set(key, totals)
	m := p.cache.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)

	return totals
}

// ComputeWithRedemption always delegates to the inner engine.
func (p *CachedPricer) ComputeWithRedemption(cart *model.Cart, loyaltyRedemption decimal.Decimal) model.Totals {
	start := time.Now()
	totals := p.inner.ComputeWithRedemption(cart, loyaltyRedemption)
	metrics.RecordPricingComputation(time.Since(start), "success")
	return totals
}

// Stop shuts down the underlying cache.
func (p *CachedPricer) Stop() {
	p.cache.Stop()
}
