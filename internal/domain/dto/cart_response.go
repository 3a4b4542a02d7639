package dto

import (
	"github.com/lulukitchen/cart-service/internal/domain/model"
)

// CartResponse pairs a cart with its computed pricing breakdown. Every
// cart read and every successful mutation returns this shape so clients
// never have to price a cart themselves.
//
// @Description Cart state together with computed totals
type CartResponse struct {
	Cart   *model.Cart  `json:"cart"`
	Totals model.Totals `json:"totals"`
}

// CheckoutResponse is returned after a successful checkout.
//
// @Description Result of a completed checkout
type CheckoutResponse struct {
	Order *model.OrderDraft `json:"order"`
	// Message is a localized confirmation line for display
	Message string `json:"message" example:"Your order has been placed"`
}

// OrderListResponse wraps a session's order history.
//
// @Description Order history for a session
type OrderListResponse struct {
	Orders []model.OrderDraft `json:"orders"`
	Count  int                `json:"count" example:"3"`
}

// MenuResponse wraps the orderable catalog.
//
// @Description Menu items grouped with their count
type MenuResponse struct {
	Items []model.MenuItem `json:"items"`
	Count int              `json:"count" example:"24"`
}

// ExtrasResponse wraps the available add-ons.
//
// @Description Add-on options available for cart lines
type ExtrasResponse struct {
	Extras []model.ExtraOption `json:"extras"`
	Count  int                 `json:"count" example:"12"`
}

// ZonesResponse wraps the configured delivery zones.
//
// @Description Delivery zones with fees and free-delivery thresholds
type ZonesResponse struct {
	Zones []model.DeliveryZone `json:"zones"`
	Count int                  `json:"count" example:"3"`
}

// CouponsResponse wraps the configured discount rules for the admin
// surface.
//
// @Description Configured coupon rules
type CouponsResponse struct {
	Coupons []model.DiscountRule `json:"coupons"`
	Count   int                  `json:"count" example:"3"`
}
