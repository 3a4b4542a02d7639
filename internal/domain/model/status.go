package model

// ReasonCode is a machine-readable reason attached to rejected cart
// operations. User-input problems are reported through these values,
// never through errors, so the presentation layer can localize them.
type ReasonCode string

const (
	// ReasonOK means the operation succeeded.
	ReasonOK ReasonCode = "ok"
	// ReasonCouponNotFound means the coupon code is unknown or inactive.
	ReasonCouponNotFound ReasonCode = "coupon_not_found"
	// ReasonCouponAlreadyApplied means the coupon is already on the cart.
	ReasonCouponAlreadyApplied ReasonCode = "coupon_already_applied"
	// ReasonCouponMinimumNotMet means the cart subtotal is below the
	// coupon's minimum-order threshold.
	ReasonCouponMinimumNotMet ReasonCode = "coupon_minimum_not_met"
	// ReasonInvalidQuantity means a non-positive quantity was supplied
	// where a positive one is required.
	ReasonInvalidQuantity ReasonCode = "invalid_quantity"
	// ReasonInvalidDeliveryMethod means the delivery method is neither
	// delivery nor pickup.
	ReasonInvalidDeliveryMethod ReasonCode = "invalid_delivery_method"
	// ReasonUnknownDeliveryZone means the zone key is not configured;
	// pricing falls back to the default fee rather than failing.
	ReasonUnknownDeliveryZone ReasonCode = "unknown_delivery_zone"
	// ReasonItemNotFound means the referenced menu item or line does not exist.
	ReasonItemNotFound ReasonCode = "item_not_found"
	// ReasonItemUnavailable means the menu item is not currently orderable.
	ReasonItemUnavailable ReasonCode = "item_unavailable"
	// ReasonCartEmpty means checkout was attempted on an empty cart.
	ReasonCartEmpty ReasonCode = "cart_empty"
	// ReasonInsufficientPoints means a loyalty redemption exceeded the
	// account balance.
	ReasonInsufficientPoints ReasonCode = "insufficient_points"
)

// OpResult is the outcome of a cart operation that can fail on user
// input. OK operations carry ReasonOK.
type OpResult struct {
	OK     bool       `json:"ok"`
	Reason ReasonCode `json:"reason"`
}

// ResultOK is the success result.
func ResultOK() OpResult {
	return OpResult{OK: true, Reason: ReasonOK}
}

// ResultRejected builds a failure result with the given reason.
func ResultRejected(reason ReasonCode) OpResult {
	return OpResult{OK: false, Reason: reason}
}
