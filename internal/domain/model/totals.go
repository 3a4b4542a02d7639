package model

import (
	"github.com/shopspring/decimal"
)

// Totals is the complete pricing breakdown of a cart, produced by the
// pricing engine. All amounts are in major currency units at decimal
// precision; presentation formatting is a collaborator concern.
//
// @Description Complete pricing breakdown of a cart
type Totals struct {
	// Subtotal is the sum of line totals before any discount
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"820"`
	// VIPDiscount is the flat VIP percentage applied to the subtotal
	VIPDiscount decimal.Decimal `json:"vip_discount" swaggertype:"string" example:"0"`
	// CouponDiscount is the additive sum of eligible coupon effects
	CouponDiscount decimal.Decimal `json:"coupon_discount" swaggertype:"string" example:"20"`
	// LoyaltyDiscount is nonzero only when a redemption was requested
	LoyaltyDiscount decimal.Decimal `json:"loyalty_discount" swaggertype:"string" example:"0"`
	// TotalDiscounts is the sum of the three discount sources
	TotalDiscounts decimal.Decimal `json:"total_discounts" swaggertype:"string" example:"20"`
	// AfterDiscounts is the subtotal minus discounts, clamped at zero
	AfterDiscounts decimal.Decimal `json:"after_discounts" swaggertype:"string" example:"800"`
	// DeliveryFee is zero for pickup, VIP carts, or above-threshold orders
	DeliveryFee decimal.Decimal `json:"delivery_fee" swaggertype:"string" example:"0"`
	// Total is AfterDiscounts plus DeliveryFee
	Total decimal.Decimal `json:"total" swaggertype:"string" example:"800"`
	// PointsEarned is floor(total); the VIP multiplier is applied only
	// when an order completes, not at cart preview
	PointsEarned int64 `json:"points_earned" example:"800"`
	// ItemCount is the sum of line quantities
	ItemCount int `json:"item_count" example:"5"`
	// NeedsForFreeDelivery is how much more the discounted subtotal must
	// grow to reach the zone's free-delivery threshold; zero when already
	// reached or not applicable
	NeedsForFreeDelivery decimal.Decimal `json:"needs_for_free_delivery" swaggertype:"string" example:"0"`
}

// EmptyTotals returns the all-zero breakdown of an empty cart.
func EmptyTotals() Totals {
	return Totals{
		Subtotal:             decimal.Zero,
		VIPDiscount:          decimal.Zero,
		CouponDiscount:       decimal.Zero,
		LoyaltyDiscount:      decimal.Zero,
		TotalDiscounts:       decimal.Zero,
		AfterDiscounts:       decimal.Zero,
		DeliveryFee:          decimal.Zero,
		Total:                decimal.Zero,
		NeedsForFreeDelivery: decimal.Zero,
	}
}
