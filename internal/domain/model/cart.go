package model

import (
	"encoding/base64"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryMethod selects between courier delivery and pickup.
type DeliveryMethod string

const (
	// DeliveryMethodDelivery means the order is delivered to the customer.
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	// DeliveryMethodPickup means the customer collects the order.
	DeliveryMethodPickup DeliveryMethod = "pickup"
)

// Valid reports whether the method is one of the known values.
func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}

// maxLineIDLength caps generated line IDs so they stay usable as URL
// path segments and document keys.
const maxLineIDLength = 50

// CartLine is a single (menu item + extras combination) entry in a cart.
// Its identity is derived from the item and the extras set, so adding the
// same combination twice merges quantities instead of duplicating lines.
//
// @Description One distinct item+extras combination in a cart
type CartLine struct {
	// LineID is the deterministic identity of the line within its cart
	LineID string `bson:"line_id" json:"line_id" example:"szechuan-beef_c3RlYW1lZC1yaWNl"`
	// MenuItemID references the catalog item
	MenuItemID string `bson:"menu_item_id" json:"menu_item_id" example:"szechuan-beef"`
	// Name is the item name frozen at add time for display and receipts
	Name string `bson:"name" json:"name" example:"Szechuan Beef"`
	// Extras are the add-ons attached to this line, unique by ID
	Extras []ExtraOption `bson:"extras" json:"extras"`
	// Quantity is always >= 1; a line reduced to 0 is removed
	Quantity int `bson:"quantity" json:"quantity" example:"2"`
	// UnitPrice is the item's effective price plus the extras total,
	// frozen when the line is first created
	UnitPrice decimal.Decimal `bson:"unit_price" json:"unit_price" swaggertype:"string" example:"83"`
	// SpecialInstructions is free-form text passed through to the kitchen
	SpecialInstructions string `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	// AddedAt drives the staleness sweep on cart load
	AddedAt time.Time `bson:"added_at" json:"added_at"`
}

// LineTotal returns UnitPrice * Quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ComputeLineID derives the stable line identity from a menu item ID and
// an extras set. The extras IDs are deduplicated, sorted, joined, and
// base64-encoded so that the same combination always yields the same ID
// regardless of selection order.
func ComputeLineID(menuItemID string, extras []ExtraOption) string {
	ids := make([]string, 0, len(extras))
	seen := make(map[string]struct{}, len(extras))
	for _, e := range extras {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)

	id := menuItemID
	if len(ids) > 0 {
		encoded := base64.RawURLEncoding.EncodeToString([]byte(strings.Join(ids, "|")))
		id = menuItemID + "_" + encoded
	}
	if len(id) > maxLineIDLength {
		id = id[:maxLineIDLength]
	}
	return id
}

// Cart is the mutable order-in-progress owned by a single session.
// Line order is insertion order; it matters for display, never for price.
//
// @Description A session's order in progress
type Cart struct {
	SessionID      string         `bson:"_id" json:"session_id"`
	Lines          []CartLine     `bson:"lines" json:"lines"`
	AppliedCoupons []string       `bson:"applied_coupons" json:"applied_coupons"`
	DeliveryZone   string         `bson:"delivery_zone" json:"delivery_zone" example:"jerusalem"`
	DeliveryMethod DeliveryMethod `bson:"delivery_method" json:"delivery_method" example:"delivery"`
	VIP            bool           `bson:"vip" json:"vip"`
	UpdatedAt      time.Time      `bson:"updated_at" json:"updated_at"`
}

// NewCart returns an empty cart for the given session with the default
// delivery selection.
func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID:      sessionID,
		Lines:          []CartLine{},
		AppliedCoupons: []string{},
		DeliveryMethod: DeliveryMethodDelivery,
	}
}

// Clone returns a deep copy of the cart. Lines, their extras, and the
// applied-coupon set are copied so the clone can be read or serialized
// while the original keeps mutating.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Lines = make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		clone.Lines[i] = l
		clone.Lines[i].Extras = append([]ExtraOption(nil), l.Extras...)
	}
	clone.AppliedCoupons = append([]string{}, c.AppliedCoupons...)
	return &clone
}

// FindLine returns the line with the given ID, or nil.
func (c *Cart) FindLine(lineID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}

// RemoveLine deletes the line with the given ID, preserving order.
// Removing an unknown ID is a no-op.
func (c *Cart) RemoveLine(lineID string) bool {
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// HasCoupon reports whether the (already normalized) code is applied.
func (c *Cart) HasCoupon(code string) bool {
	for _, applied := range c.AppliedCoupons {
		if applied == code {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the sum of line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// Subtotal returns the sum of line totals before any discount.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	return subtotal
}

// DropStaleLines removes lines whose AddedAt is older than ttl relative
// to now and returns how many were dropped. Used when a persisted cart
// is reloaded at session start.
func (c *Cart) DropStaleLines(now time.Time, ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-ttl)
	kept := c.Lines[:0]
	dropped := 0
	for _, l := range c.Lines {
		if l.AddedAt.Before(cutoff) {
			dropped++
			continue
		}
		kept = append(kept, l)
	}
	c.Lines = kept
	return dropped
}
