package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/logger"
	"github.com/lulukitchen/cart-service/internal/metrics"
	"github.com/lulukitchen/cart-service/internal/repository"
)

const (
	// OrderNumberPrefix prefixes every order number.
	OrderNumberPrefix = "LK"
	// DefaultHistoryLimit caps a session's stored order history.
	DefaultHistoryLimit = 50
	// VIPMinOrders is the completed-order count that qualifies a session for VIP.
	VIPMinOrders = 3
	// VIPMinSpend is the total spend that qualifies a session for VIP.
	VIPMinSpend = 1500
	// VIPLoyaltyMultiplier doubles points awarded to VIP sessions.
	VIPLoyaltyMultiplier = 2
)

// ErrOrdersNotConfigured is returned when checkout is attempted without
// an orders repository.
var ErrOrdersNotConfigured = errors.New("orders repository not configured")

// CheckoutService assembles immutable order drafts from carts.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string, customer model.CustomerInfo, paymentMethod string, redeemPoints int64) (*model.OrderDraft, model.OpResult, error)
	History(ctx context.Context, sessionID string, limit int) ([]model.OrderDraft, error)
	Order(ctx context.Context, orderNumber string) (*model.OrderDraft, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	carts        CartStore
	pricer       PricingEngine
	orders       repository.OrdersRepositoryInterface
	loyalty      repository.LoyaltyRepositoryInterface
	historyLimit int
}

// CheckoutOption configures a CheckoutServiceImpl.
type CheckoutOption func(*CheckoutServiceImpl)

// WithHistoryLimit overrides the per-session order history cap.
func WithHistoryLimit(limit int) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// NewCheckoutService creates a new checkout service. The loyalty
// repository may be nil; points and auto-VIP are then skipped.
func NewCheckoutService(carts CartStore, pricer PricingEngine, orders repository.OrdersRepositoryInterface, loyalty repository.LoyaltyRepositoryInterface, opts ...CheckoutOption) *CheckoutServiceImpl {
	s := &CheckoutServiceImpl{
		carts:        carts,
		pricer:       pricer,
		orders:       orders,
		loyalty:      loyalty,
		historyLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout snapshots the session's cart into an order draft, appends it
// to the history, accrues loyalty points and clears the cart lines.
// Empty carts are rejected with a reason, not an error.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, sessionID string, customer model.CustomerInfo, paymentMethod string, redeemPoints int64) (*model.OrderDraft, model.OpResult, error) {
	if s.orders == nil {
		return nil, model.OpResult{}, ErrOrdersNotConfigured
	}

	cart := s.carts.Get(ctx, sessionID)
	if cart.IsEmpty() {
		metrics.RecordCheckout("rejected")
		return nil, model.ResultRejected(model.ReasonCartEmpty), nil
	}

	// Points redeem one-to-one against the order; the debit happens
	// first so a failed redemption never produces a discounted order.
	redemption := decimal.Zero
	if redeemPoints > 0 && s.loyalty != nil {
		if _, err := s.loyalty.RedeemPoints(ctx, sessionID, redeemPoints); err != nil {
			if errors.Is(err, repository.ErrInsufficientPoints) {
				metrics.RecordCheckout("rejected")
				return nil, model.ResultRejected(model.ReasonInsufficientPoints), nil
			}
			return nil, model.OpResult{}, err
		}
		redemption = decimal.NewFromInt(redeemPoints)
	}

	totals := s.pricer.ComputeWithRedemption(cart, redemption)

	orderNumber, err := s.nextOrderNumber(ctx, time.Now())
	if err != nil {
		s.refundRedemption(ctx, sessionID, redeemPoints)
		metrics.RecordCheckout("error")
		return nil, model.OpResult{}, err
	}

	points := totals.PointsEarned
	if cart.VIP {
		points *= VIPLoyaltyMultiplier
	}

	draft := &model.OrderDraft{
		OrderNumber:    orderNumber,
		SessionID:      sessionID,
		Lines:          append([]model.CartLine(nil), cart.Lines...),
		AppliedCoupons: append([]string(nil), cart.AppliedCoupons...),
		Totals:         totals,
		DeliveryZone:   cart.DeliveryZone,
		DeliveryMethod: cart.DeliveryMethod,
		VIP:            cart.VIP,
		Customer:       customer,
		PaymentMethod:  paymentMethod,
		PointsAwarded:  points,
		Status:         model.OrderStatusDraft,
		CreatedAt:      time.Now(),
	}

	if err := s.orders.Insert(ctx, draft); err != nil {
		s.refundRedemption(ctx, sessionID, redeemPoints)
		metrics.RecordCheckout("error")
		return nil, model.OpResult{}, err
	}

	if err := s.orders.TrimSession(ctx, sessionID, s.historyLimit); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to trim order history")
	}

	s.accrueLoyalty(ctx, sessionID, points, totals.Total)

	s.carts.Clear(ctx, sessionID, false)

	metrics.RecordCheckout("success")
	log.Info().
		Str("session_id", sessionID).
		Str("order_number", orderNumber).
		Str("total", totals.Total.String()).
		Int64("points_awarded", points).
		Msg("Checkout completed")

	return draft, model.ResultOK(), nil
}

// refundRedemption returns debited points when checkout fails after the
// redemption was already taken.
func (s *CheckoutServiceImpl) refundRedemption(ctx context.Context, sessionID string, points int64) {
	if points <= 0 || s.loyalty == nil {
		return
	}
	if err := s.loyalty.RefundPoints(ctx, sessionID, points); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Int64("points", points).Msg("Failed to refund redeemed points")
	}
}

// nextOrderNumber builds LK-yymmdd-NNNN from the date-scoped counter.
func (s *CheckoutServiceImpl) nextOrderNumber(ctx context.Context, now time.Time) (string, error) {
	day := now.Format("060102")
	seq, err := s.orders.NextSequence(ctx, fmt.Sprintf("orders-%s", day))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%04d", OrderNumberPrefix, day, seq), nil
}

// accrueLoyalty credits points, records spend and runs the auto-VIP
// check. Loyalty failures never fail an already-stored order.
func (s *CheckoutServiceImpl) accrueLoyalty(ctx context.Context, sessionID string, points int64, spent decimal.Decimal) {
	if s.loyalty == nil {
		return
	}

	slog := logger.WithSession(sessionID)
	account, err := s.loyalty.RecordOrder(ctx, sessionID, points, spent)
	if err != nil {
		slog.Warn().Err(err).Msg("Failed to record loyalty accrual")
		return
	}

	if account.VIP {
		return
	}
	if account.OrdersCount >= VIPMinOrders || account.TotalSpent.GreaterThanOrEqual(decimal.NewFromInt(VIPMinSpend)) {
		if err := s.loyalty.SetVIP(ctx, sessionID, true); err != nil {
			slog.Warn().Err(err).Msg("Failed to persist VIP promotion")
			return
		}
		s.carts.SetVIP(ctx, sessionID, true)
		slog.Info().Msg("Session promoted to VIP")
	}
}

// History returns the session's order history, newest first.
func (s *CheckoutServiceImpl) History(ctx context.Context, sessionID string, limit int) ([]model.OrderDraft, error) {
	if s.orders == nil {
		return nil, ErrOrdersNotConfigured
	}
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	return s.orders.ListBySession(ctx, sessionID, limit)
}

// Order returns a single order draft by order number.
func (s *CheckoutServiceImpl) Order(ctx context.Context, orderNumber string) (*model.OrderDraft, error) {
	if s.orders == nil {
		return nil, ErrOrdersNotConfigured
	}
	return s.orders.Get(ctx, orderNumber)
}
