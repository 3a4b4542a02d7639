// Package i18n provides internationalization support for the cart service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials (user not registered or wrong password).
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeySessionRequired indicates that the X-Session-ID header is missing.
	ErrKeySessionRequired = "error.session_required"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Rejection reason translation keys, one per cart reason code.
const (
	// ReasonKeyCouponNotFound indicates an unknown coupon code.
	ReasonKeyCouponNotFound = "reason.coupon_not_found"
	// ReasonKeyCouponAlreadyApplied indicates a coupon applied twice.
	ReasonKeyCouponAlreadyApplied = "reason.coupon_already_applied"
	// ReasonKeyCouponMinimumNotMet indicates the order minimum was not met.
	ReasonKeyCouponMinimumNotMet = "reason.coupon_minimum_not_met"
	// ReasonKeyInvalidQuantity indicates a non-positive quantity.
	ReasonKeyInvalidQuantity = "reason.invalid_quantity"
	// ReasonKeyInvalidDeliveryMethod indicates an unknown delivery method.
	ReasonKeyInvalidDeliveryMethod = "reason.invalid_delivery_method"
	// ReasonKeyUnknownDeliveryZone indicates an unconfigured delivery zone.
	ReasonKeyUnknownDeliveryZone = "reason.unknown_delivery_zone"
	// ReasonKeyItemNotFound indicates an unknown menu item or cart line.
	ReasonKeyItemNotFound = "reason.item_not_found"
	// ReasonKeyItemUnavailable indicates a menu item that is not orderable.
	ReasonKeyItemUnavailable = "reason.item_unavailable"
	// ReasonKeyCartEmpty indicates checkout on an empty cart.
	ReasonKeyCartEmpty = "reason.cart_empty"
	// ReasonKeyInsufficientPoints indicates a redemption above the balance.
	ReasonKeyInsufficientPoints = "reason.insufficient_points"
)

// Success message translation keys.
const (
	// SuccessKeyOrderPlaced indicates a completed checkout.
	SuccessKeyOrderPlaced = "success.order_placed"
)
