package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/metrics"
	"github.com/lulukitchen/cart-service/internal/repository"
)

// DefaultLineTTL is how long a persisted cart line survives before the
// staleness sweep drops it on load.
const DefaultLineTTL = 24 * time.Hour

// ChangeListener receives a notification after every successful cart
// mutation. Listeners must not mutate the cart.
type ChangeListener func(sessionID string, cart *model.Cart)

// CartStore owns the mutable carts, one per session, and mirrors every
// mutation to the carts repository. The in-memory cart is the source of
// truth for the session: persistence failures are logged, never
// propagated, and a corrupted or missing persisted cart loads as empty.
type CartStore interface {
	Get(ctx context.Context, sessionID string) *model.Cart
	AddLine(ctx context.Context, sessionID string, item model.MenuItem, extras []model.ExtraOption, quantity int, instructions string) (*model.CartLine, model.OpResult)
	SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) model.OpResult
	RemoveLine(ctx context.Context, sessionID, lineID string) model.OpResult
	Clear(ctx context.Context, sessionID string, clearCoupons bool)
	ApplyCoupon(ctx context.Context, sessionID, code string) model.OpResult
	RemoveCoupon(ctx context.Context, sessionID, code string) model.OpResult
	SetDeliveryZone(ctx context.Context, sessionID, zoneKey string) model.OpResult
	SetDeliveryMethod(ctx context.Context, sessionID string, method model.DeliveryMethod) model.OpResult
	SetVIP(ctx context.Context, sessionID string, vip bool)
	OnChange(listener ChangeListener)
}

// StoreOption configures a SessionCartStore.
type StoreOption func(*SessionCartStore)

// WithLineTTL overrides the staleness TTL applied when a persisted cart
// is reloaded.
func WithLineTTL(ttl time.Duration) StoreOption {
	return func(s *SessionCartStore) {
		if ttl > 0 {
			s.lineTTL = ttl
		}
	}
}

// SessionCartStore implements CartStore over an in-memory session map
// with write-through persistence.
type SessionCartStore struct {
	mu        sync.Mutex
	carts     map[string]*model.Cart
	repo      repository.CartsRepositoryInterface
	policy    DiscountPolicy
	zones     ZoneTable
	lineTTL   time.Duration
	listeners []ChangeListener
}

// NewSessionCartStore creates a cart store. The repository may be nil,
// in which case carts live only in memory.
func NewSessionCartStore(repo repository.CartsRepositoryInterface, policy DiscountPolicy, zones ZoneTable, opts ...StoreOption) *SessionCartStore {
	s := &SessionCartStore{
		carts:   make(map[string]*model.Cart),
		repo:    repo,
		policy:  policy,
		zones:   zones,
		lineTTL: DefaultLineTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers a listener invoked after each successful mutation.
func (s *SessionCartStore) OnChange(listener ChangeListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, listener)
	s.mu.Unlock()
}

// Get returns a snapshot of the session's cart, loading it from the
// repository on first access. Load failures start an empty cart. The
// returned cart is a deep copy: concurrent requests for the same
// session may price and serialize it while the store keeps mutating
// the live cart.
func (s *SessionCartStore) Get(ctx context.Context, sessionID string) *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(ctx, sessionID).Clone()
}

// cartLocked returns the cached cart or loads it. Callers hold s.mu.
func (s *SessionCartStore) cartLocked(ctx context.Context, sessionID string) *model.Cart {
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}

	cart := s.loadCart(ctx, sessionID)
	s.carts[sessionID] = cart
	return cart
}

// loadCart fetches the persisted cart and applies the staleness sweep.
func (s *SessionCartStore) loadCart(ctx context.Context, sessionID string) *model.Cart {
	if s.repo == nil {
		return model.NewCart(sessionID)
	}

	cart, err := s.repo.Find(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to load cart, starting empty")
		return model.NewCart(sessionID)
	}
	if cart == nil {
		return model.NewCart(sessionID)
	}

	if dropped := cart.DropStaleLines(time.Now(), s.lineTTL); dropped > 0 {
		log.Info().Str("session_id", sessionID).Int("dropped", dropped).Msg("Dropped stale cart lines on load")
	}
	if cart.Lines == nil {
		cart.Lines = []model.CartLine{}
	}
	if cart.AppliedCoupons == nil {
		cart.AppliedCoupons = []string{}
	}
	if cart.DeliveryMethod == "" {
		cart.DeliveryMethod = model.DeliveryMethodDelivery
	}
	return cart
}

// AddLine adds an item+extras combination to the cart. A line with the
// same identity already in the cart has its quantity incremented; its
// unit price stays frozen at the original add.
func (s *SessionCartStore) AddLine(ctx context.Context, sessionID string, item model.MenuItem, extras []model.ExtraOption, quantity int, instructions string) (*model.CartLine, model.OpResult) {
	if quantity <= 0 {
		metrics.RecordCartOperation("add_line", "rejected")
		return nil, model.ResultRejected(model.ReasonInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	lineID := model.ComputeLineID(item.ID, extras)

	line := cart.FindLine(lineID)
	if line != nil {
		line.Quantity += quantity
		// Re-adding resets the staleness clock
		line.AddedAt = time.Now()
	} else {
		cart.Lines = append(cart.Lines, model.CartLine{
			LineID:              lineID,
			MenuItemID:          item.ID,
			Name:                item.Name,
			Extras:              extras,
			Quantity:            quantity,
			UnitPrice:           item.EffectivePrice().Add(model.ExtrasTotal(extras)),
			SpecialInstructions: instructions,
			AddedAt:             time.Now(),
		})
		line = &cart.Lines[len(cart.Lines)-1]
	}

	s.commitLocked(ctx, cart)
	metrics.RecordCartOperation("add_line", "success")
	return line, model.ResultOK()
}

// SetQuantity updates a line's quantity; zero or below removes the line.
// Unknown line IDs are a no-op, not an error.
func (s *SessionCartStore) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) model.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)

	if quantity <= 0 {
		cart.RemoveLine(lineID)
		s.commitLocked(ctx, cart)
		metrics.RecordCartOperation("set_quantity", "removed")
		return model.ResultOK()
	}

	line := cart.FindLine(lineID)
	if line == nil {
		metrics.RecordCartOperation("set_quantity", "missing")
		return model.ResultRejected(model.ReasonItemNotFound)
	}

	line.Quantity = quantity
	s.commitLocked(ctx, cart)
	metrics.RecordCartOperation("set_quantity", "success")
	return model.ResultOK()
}

// RemoveLine deletes a line. Removing a non-existent line succeeds.
func (s *SessionCartStore) RemoveLine(ctx context.Context, sessionID, lineID string) model.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	if cart.RemoveLine(lineID) {
		s.commitLocked(ctx, cart)
		metrics.RecordCartOperation("remove_line", "success")
	} else {
		metrics.RecordCartOperation("remove_line", "missing")
	}
	return model.ResultOK()
}

// Clear empties the cart's lines. Applied coupons survive unless
// clearCoupons is set; the delivery selection always survives.
func (s *SessionCartStore) Clear(ctx context.Context, sessionID string, clearCoupons bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	cart.Lines = []model.CartLine{}
	if clearCoupons {
		cart.AppliedCoupons = []string{}
	}
	s.commitLocked(ctx, cart)
	metrics.RecordCartOperation("clear", "success")
}

// ApplyCoupon validates and applies a coupon code. Rejections carry the
// reason; the applied set is never mutated on rejection.
func (s *SessionCartStore) ApplyCoupon(ctx context.Context, sessionID, code string) model.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	normalized := NormalizeCode(code)

	rule, ok := s.policy.Lookup(normalized)
	if !ok {
		metrics.RecordCouponRejection(string(model.ReasonCouponNotFound))
		return model.ResultRejected(model.ReasonCouponNotFound)
	}
	if cart.HasCoupon(normalized) {
		metrics.RecordCouponRejection(string(model.ReasonCouponAlreadyApplied))
		return model.ResultRejected(model.ReasonCouponAlreadyApplied)
	}
	if !rule.EligibleFor(cart.Subtotal()) {
		metrics.RecordCouponRejection(string(model.ReasonCouponMinimumNotMet))
		return model.ResultRejected(model.ReasonCouponMinimumNotMet)
	}

	cart.AppliedCoupons = append(cart.AppliedCoupons, normalized)
	s.commitLocked(ctx, cart)
	metrics.RecordCartOperation("apply_coupon", "success")
	return model.ResultOK()
}

// RemoveCoupon drops a coupon from the cart; unknown codes are a no-op.
func (s *SessionCartStore) RemoveCoupon(ctx context.Context, sessionID, code string) model.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	normalized := NormalizeCode(code)

	kept := cart.AppliedCoupons[:0]
	removed := false
	for _, applied := range cart.AppliedCoupons {
		if applied == normalized {
			removed = true
			continue
		}
		kept = append(kept, applied)
	}
	cart.AppliedCoupons = kept

	if removed {
		s.commitLocked(ctx, cart)
		metrics.RecordCartOperation("remove_coupon", "success")
	} else {
		metrics.RecordCartOperation("remove_coupon", "missing")
	}
	return model.ResultOK()
}

// SetDeliveryZone selects the delivery zone. Unknown keys are still
// stored (pricing falls back to the default fee) but reported so the
// presentation layer can warn.
func (s *SessionCartStore) SetDeliveryZone(ctx context.Context, sessionID, zoneKey string) model.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	cart.DeliveryZone = zoneKey
	s.commitLocked(ctx, cart)

	if _, ok := s.zones.Resolve(zoneKey); !ok {
		log.Warn().Str("session_id", sessionID).Str("zone", zoneKey).Msg("Unknown delivery zone, fallback fee applies")
		return model.ResultRejected(model.ReasonUnknownDeliveryZone)
	}
	return model.ResultOK()
}

// SetDeliveryMethod selects delivery or pickup.
func (s *SessionCartStore) SetDeliveryMethod(ctx context.Context, sessionID string, method model.DeliveryMethod) model.OpResult {
	if !method.Valid() {
		return model.ResultRejected(model.ReasonInvalidDeliveryMethod)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	cart.DeliveryMethod = method
	s.commitLocked(ctx, cart)
	return model.ResultOK()
}

// SetVIP flips the session's VIP flag.
func (s *SessionCartStore) SetVIP(ctx context.Context, sessionID string, vip bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(ctx, sessionID)
	if cart.VIP == vip {
		return
	}
	cart.VIP = vip
	s.commitLocked(ctx, cart)
}

// commitLocked persists the cart and notifies listeners. Persistence is
// best effort: the in-memory cart stays authoritative for the session.
// Callers hold s.mu.
func (s *SessionCartStore) commitLocked(ctx context.Context, cart *model.Cart) {
	cart.UpdatedAt = time.Now()

	if s.repo != nil {
		if err := s.repo.Save(ctx, cart); err != nil {
			log.Warn().Err(err).Str("session_id", cart.SessionID).Msg("Failed to persist cart")
		}
	}

	for _, listener := range s.listeners {
		listener(cart.SessionID, cart)
	}
}
