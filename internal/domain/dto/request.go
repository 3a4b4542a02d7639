// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// AddLineRequest represents the JSON request body for adding a cart line.
//
// The ItemID field is required; ExtraIDs reference catalog extras and an
// unknown ID rejects the whole request. Quantity defaults to 1.
// Validation is performed using gin's binding tags.
//
// @Description Request to add an item with optional extras to the cart
// @Example {"item_id": "kung-pao-chicken", "quantity": 2}
// @Example {"item_id": "kung-pao-chicken", "extra_ids": ["steamed-rice"], "quantity": 1, "special_instructions": "no peanuts"}
type AddLineRequest struct {
	// ItemID is the catalog ID of the menu item to add.
	ItemID string `json:"item_id" binding:"required" example:"kung-pao-chicken"`
	// ExtraIDs are optional catalog IDs of extras attached to the line.
	ExtraIDs []string `json:"extra_ids" example:"steamed-rice,garlic-sauce"`
	// Quantity is how many units to add. Defaults to 1 when omitted.
	Quantity int `json:"quantity" example:"2" minimum:"1"`
	// SpecialInstructions is free-form preparation text for the kitchen.
	SpecialInstructions string `json:"special_instructions,omitempty" example:"no peanuts"`
} // @name AddLineRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidQuantity is returned when quantity is not positive.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrMissingItemID is returned when item_id is empty.
	ErrMissingItemID = &ValidationError{
		Field:   "item_id",
		Message: "is required",
	}
)

// Validate performs custom validation on the request, defaulting the
// quantity to 1 when omitted.
// Returns an error if validation fails, nil otherwise.
func (r *AddLineRequest) Validate() error {
	if r.ItemID == "" {
		return ErrMissingItemID
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// SetQuantityRequest represents the JSON request body for updating a line's quantity.
//
// @Description Request to set a cart line's quantity; zero removes the line
type SetQuantityRequest struct {
	// Quantity is the new quantity. Zero or below removes the line.
	Quantity int `json:"quantity" example:"3"`
} // @name SetQuantityRequest

// ApplyCouponRequest represents the JSON request body for applying a coupon.
//
// @Description Request to apply a coupon code to the cart
type ApplyCouponRequest struct {
	// Code is the coupon code. Matching is case-insensitive.
	Code string `json:"code" binding:"required" example:"FIRST10"`
} // @name ApplyCouponRequest

// Validate performs custom validation on the request.
func (r *ApplyCouponRequest) Validate() error {
	if r.Code == "" {
		return &ValidationError{Field: "code", Message: "is required"}
	}
	return nil
}

// SetDeliveryRequest represents the JSON request body for selecting delivery.
//
// @Description Request to select the delivery method and zone
type SetDeliveryRequest struct {
	// Method is "delivery" or "pickup".
	Method string `json:"method" binding:"required,oneof=delivery pickup" example:"delivery"`
	// Zone is the delivery zone key. Ignored for pickup.
	Zone string `json:"zone,omitempty" example:"jerusalem"`
} // @name SetDeliveryRequest

// SetVIPRequest represents the JSON request body for toggling VIP
// pricing on the session's cart.
//
// @Description Request to set the cart's VIP flag
type SetVIPRequest struct {
	VIP bool `json:"vip" example:"true"`
} // @name SetVIPRequest

// CheckoutRequest represents the JSON request body for the checkout endpoint.
//
// @Description Request to convert the session's cart into an order draft
// @Example {"customer": {"name": "Dana Levi", "phone": "+972501234567", "address": "Jaffa St 1"}, "payment_method": "cash"}
type CheckoutRequest struct {
	// Customer carries the contact and delivery details for the order.
	Customer CustomerInfoRequest `json:"customer" binding:"required"`
	// PaymentMethod is the declared payment method, e.g. "cash" or "card".
	PaymentMethod string `json:"payment_method" binding:"required" example:"cash"`
	// RedeemPoints is the number of loyalty points to redeem against the
	// order, one point per currency unit.
	RedeemPoints int64 `json:"redeem_points,omitempty" example:"50" minimum:"0"`
} // @name CheckoutRequest

// CustomerInfoRequest carries customer contact details at checkout.
//
// @Description Customer contact details for an order
type CustomerInfoRequest struct {
	// Name is the customer's full name.
	Name string `json:"name" binding:"required" example:"Dana Levi"`
	// Phone is the customer's contact phone.
	Phone string `json:"phone" binding:"required" example:"+972501234567"`
	// Address is required for delivery orders.
	Address string `json:"address,omitempty" example:"Jaffa St 1, Jerusalem"`
	// Notes is free-form text attached to the order.
	Notes string `json:"notes,omitempty"`
} // @name CustomerInfoRequest

// Validate performs custom validation on the checkout request.
func (r *CheckoutRequest) Validate() error {
	if r.Customer.Name == "" {
		return &ValidationError{Field: "customer.name", Message: "is required"}
	}
	if r.Customer.Phone == "" {
		return &ValidationError{Field: "customer.phone", Message: "is required"}
	}
	if r.PaymentMethod == "" {
		return &ValidationError{Field: "payment_method", Message: "is required"}
	}
	if r.RedeemPoints < 0 {
		return &ValidationError{Field: "redeem_points", Message: "must not be negative"}
	}
	return nil
}

// UpsertCouponRequest represents the JSON request body for saving a coupon.
type UpsertCouponRequest struct {
	// Code is the coupon code. Stored upper-case.
	Code string `json:"code" binding:"required" example:"FAMILY20"`
	// Type is "percent" or "amount".
	Type string `json:"type" binding:"required,oneof=percent amount" example:"amount"`
	// Value is the percent rate (0-100) or the fixed amount, as a decimal string.
	Value string `json:"value" binding:"required" example:"20"`
	// MinOrderSubtotal is the eligibility threshold, as a decimal string.
	MinOrderSubtotal string `json:"min_order_subtotal,omitempty" example:"200"`
	// Description is shown to the customer when the coupon applies.
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
} // @name UpsertCouponRequest

// UpsertZoneRequest represents the JSON request body for saving a delivery zone.
type UpsertZoneRequest struct {
	// Key identifies the zone in delivery selections.
	Key string `json:"key" binding:"required" example:"jerusalem"`
	// Name is the display name of the zone.
	Name string `json:"name" binding:"required" example:"Jerusalem"`
	// FlatFee is the delivery fee, as a decimal string.
	FlatFee string `json:"flat_fee" binding:"required" example:"40"`
	// FreeThresholdSubtotal is the free-delivery threshold, as a decimal string.
	FreeThresholdSubtotal string `json:"free_threshold_subtotal" binding:"required" example:"800"`
	// EstimatedTime is a human-readable delivery estimate.
	EstimatedTime string `json:"estimated_time,omitempty" example:"45-60 min"`
	Active        bool   `json:"active"`
} // @name UpsertZoneRequest

// SetCouponActiveRequest represents the JSON request body for toggling a
// coupon's active flag.
type SetCouponActiveRequest struct {
	Active bool `json:"active" example:"false"`
} // @name SetCouponActiveRequest

// UpsertExtraRequest represents the JSON request body for saving an add-on.
type UpsertExtraRequest struct {
	// ID identifies the add-on across the catalog.
	ID string `json:"id" binding:"required" example:"steamed-rice"`
	// Name is the display name.
	Name string `json:"name" binding:"required" example:"Steamed Rice"`
	// Price is the add-on price, as a decimal string.
	Price string `json:"price" binding:"required" example:"18"`
	// Category groups the add-on (rice, sauce, vegetable, protein).
	Category string `json:"category,omitempty" example:"rice"`
} // @name UpsertExtraRequest

// UpsertMenuItemRequest represents the JSON request body for saving a menu item.
type UpsertMenuItemRequest struct {
	// ID identifies the menu item across the catalog.
	ID string `json:"id" binding:"required" example:"kung-pao-chicken"`
	// Name is the display name.
	Name string `json:"name" binding:"required" example:"Kung Pao Chicken"`
	// BasePrice is the list price, as a decimal string.
	BasePrice string `json:"base_price" binding:"required" example:"58"`
	// DiscountedPrice optionally undercuts the base price, as a decimal string.
	DiscountedPrice string `json:"discounted_price,omitempty" example:"49"`
	// Category groups the item on the menu.
	Category   string `json:"category,omitempty" example:"main"`
	Spicy      bool   `json:"spicy,omitempty"`
	Vegetarian bool   `json:"vegetarian,omitempty"`
	Vegan      bool   `json:"vegan,omitempty"`
	GlutenFree bool   `json:"gluten_free,omitempty"`
	Available  bool   `json:"available"`
} // @name UpsertMenuItemRequest
