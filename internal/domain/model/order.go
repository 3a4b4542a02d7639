package model

import (
	"time"
)

// OrderStatus tracks an order draft's lifecycle. The core only ever
// produces drafts; later transitions belong to the notification and
// payment collaborators.
type OrderStatus string

const (
	// OrderStatusDraft is the only status the core assigns.
	OrderStatusDraft OrderStatus = "draft"
	// OrderStatusSubmitted is set by external collaborators.
	OrderStatusSubmitted OrderStatus = "submitted"
	// OrderStatusConfirmed is set by external collaborators.
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// CustomerInfo is the contact and delivery detail captured at checkout.
//
// @Description Customer contact details for an order
type CustomerInfo struct {
	Name    string `bson:"name" json:"name" example:"Dana Levi"`
	Phone   string `bson:"phone" json:"phone" example:"+972501234567"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// OrderDraft is the immutable snapshot handed to external checkout
// collaborators. Order numbers come from a per-instance persisted
// sequence; they are human-readable but not globally unique across
// devices, so they must not be used as an external system of record.
//
// @Description Immutable checkout snapshot of a cart
type OrderDraft struct {
	// OrderNumber looks like LK-250831-0042
	OrderNumber    string         `bson:"_id" json:"order_number" example:"LK-250831-0042"`
	SessionID      string         `bson:"session_id" json:"session_id"`
	Lines          []CartLine     `bson:"lines" json:"lines"`
	AppliedCoupons []string       `bson:"applied_coupons" json:"applied_coupons"`
	Totals         Totals         `bson:"totals" json:"totals"`
	DeliveryZone   string         `bson:"delivery_zone" json:"delivery_zone"`
	DeliveryMethod DeliveryMethod `bson:"delivery_method" json:"delivery_method"`
	VIP            bool           `bson:"vip" json:"vip"`
	Customer       CustomerInfo   `bson:"customer" json:"customer"`
	PaymentMethod  string         `bson:"payment_method,omitempty" json:"payment_method,omitempty" example:"cash"`
	// PointsAwarded includes the VIP multiplier, unlike the preview value
	// in Totals.PointsEarned
	PointsAwarded int64       `bson:"points_awarded" json:"points_awarded"`
	Status        OrderStatus `bson:"status" json:"status" example:"draft"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
}
