package cache

import "github.com/lulukitchen/cart-service/internal/domain/model"

// Cache defines the interface for totals cache operations. Keys are
// cart fingerprints.
type Cache interface {
	Get(key string) (model.Totals, bool)
	Set(key string, value model.Totals)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
