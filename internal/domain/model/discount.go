package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType distinguishes percentage discounts from fixed amounts.
type DiscountType string

const (
	// DiscountTypePercent applies a percentage of the order subtotal.
	DiscountTypePercent DiscountType = "percent"
	// DiscountTypeAmount subtracts a fixed amount from the subtotal.
	DiscountTypeAmount DiscountType = "amount"
)

// DiscountRule describes a single coupon or tier discount. Coupons and
// the VIP discount are both instances of this shape.
//
// @Description Percent or fixed-amount discount with an eligibility threshold
type DiscountRule struct {
	// Code is the normalized (upper-case) coupon code
	Code string `bson:"_id" json:"code" example:"FAMILY20"`
	// Type is "percent" or "amount"
	Type DiscountType `bson:"type" json:"type" example:"amount"`
	// Value is the percent rate (0-100) or the fixed amount
	Value decimal.Decimal `bson:"value" json:"value" swaggertype:"string" example:"20"`
	// MinOrderSubtotal is the minimum undiscounted subtotal for eligibility
	MinOrderSubtotal decimal.Decimal `bson:"min_order_subtotal" json:"min_order_subtotal" swaggertype:"string" example:"200"`
	// Description is shown to the customer when the coupon applies
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// EligibleFor reports whether the rule's minimum-order threshold is met
// by the given undiscounted subtotal.
func (r DiscountRule) EligibleFor(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(r.MinOrderSubtotal)
}

// Amount returns the discount the rule contributes for the given
// undiscounted subtotal. An ineligible rule contributes zero.
func (r DiscountRule) Amount(subtotal decimal.Decimal) decimal.Decimal {
	if !r.EligibleFor(subtotal) {
		return decimal.Zero
	}
	if r.Type == DiscountTypePercent {
		return subtotal.Mul(r.Value).Div(decimal.NewFromInt(100))
	}
	return r.Value
}

// DeliveryZone is a geographic delivery area with its own flat fee and
// free-delivery subtotal threshold.
//
// @Description Delivery area with fee and free-delivery threshold
type DeliveryZone struct {
	// Key identifies the zone in delivery selections
	Key string `bson:"_id" json:"key" example:"jerusalem"`
	// Name is the display name of the zone
	Name string `bson:"name" json:"name" example:"Jerusalem"`
	// FlatFee is charged when the free-delivery threshold is not met
	FlatFee decimal.Decimal `bson:"flat_fee" json:"flat_fee" swaggertype:"string" example:"40"`
	// FreeThresholdSubtotal is the discounted subtotal at which delivery
	// becomes free
	FreeThresholdSubtotal decimal.Decimal `bson:"free_threshold_subtotal" json:"free_threshold_subtotal" swaggertype:"string" example:"800"`
	// EstimatedTime is a human-readable delivery estimate
	EstimatedTime string    `bson:"estimated_time,omitempty" json:"estimated_time,omitempty" example:"45-60 min"`
	Active        bool      `bson:"active" json:"active"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
