package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/internal/domain/dto"
	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/i18n"
	"github.com/lulukitchen/cart-service/internal/metrics"
	"github.com/lulukitchen/cart-service/internal/middleware"
	"github.com/lulukitchen/cart-service/internal/service"
)

// CartHandler provides HTTP handlers for cart routes. Every mutation
// returns the updated cart together with freshly computed totals so
// clients never price a cart themselves.
type CartHandler struct {
	carts   service.CartStore
	pricer  service.PricingEngine
	catalog service.CatalogService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(carts service.CartStore, pricer service.PricingEngine, catalog service.CatalogService) *CartHandler {
	return &CartHandler{
		carts:   carts,
		pricer:  pricer,
		catalog: catalog,
	}
}

// cartResponse builds the cart+totals payload for the session.
func (h *CartHandler) cartResponse(c *gin.Context, sessionID string) dto.CartResponse {
	cart := h.carts.Get(c.Request.Context(), sessionID)

	start := time.Now()
	totals := h.pricer.Compute(cart)
	metrics.RecordPricingComputation(time.Since(start), "success")

	return dto.CartResponse{Cart: cart, Totals: totals}
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the session's cart
// @Description  Returns the current cart and its computed pricing breakdown. A session that has never touched its cart gets an empty one.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart with totals"
// @Failure      400 {object} dto.ErrorResponse "Missing session header"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	metrics.RecordCartOperation("get", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// AddLine handles POST /api/cart/lines requests.
//
// @Summary      Add an item to the cart
// @Description  Resolves the menu item and extras from the catalog, freezes the unit price, and adds the line. Adding the same item+extras combination again merges quantities.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        request body dto.AddLineRequest true "Item, extras and quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart with totals"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown menu item or extra"
// @Failure      422 {object} dto.ErrorResponse "Item not currently orderable"
// @Router       /api/cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	var req dto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	item, err := h.catalog.MenuItem(c.Request.Context(), req.ItemID)
	if err != nil {
		if err == service.ErrItemNotFound {
			metrics.RecordCartOperation("add_line", "rejected")
			builder.Rejected(model.ReasonItemNotFound)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if !item.Available {
		metrics.RecordCartOperation("add_line", "rejected")
		builder.Rejected(model.ReasonItemUnavailable)
		return
	}

	extras, err := h.catalog.ResolveExtras(c.Request.Context(), req.ExtraIDs)
	if err != nil {
		if err == service.ErrItemNotFound {
			metrics.RecordCartOperation("add_line", "rejected")
			builder.Rejected(model.ReasonItemNotFound)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	_, result := h.carts.AddLine(c.Request.Context(), sessionID, *item, extras, req.Quantity, req.SpecialInstructions)
	if !result.OK {
		metrics.RecordCartOperation("add_line", "rejected")
		builder.Rejected(result.Reason)
		return
	}

	metrics.RecordCartOperation("add_line", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// SetQuantity handles PATCH /api/cart/lines/:lineID requests.
//
// @Summary      Change a line's quantity
// @Description  Sets the quantity of an existing cart line. A quantity of zero removes the line.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        lineID path string true "Cart line identifier"
// @Param        request body dto.SetQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart with totals"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown cart line"
// @Router       /api/cart/lines/{lineID} [patch]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)
	lineID := c.Param("lineID")

	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result := h.carts.SetQuantity(c.Request.Context(), sessionID, lineID, req.Quantity)
	if !result.OK {
		metrics.RecordCartOperation("set_quantity", "rejected")
		builder.Rejected(result.Reason)
		return
	}

	metrics.RecordCartOperation("set_quantity", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// RemoveLine handles DELETE /api/cart/lines/:lineID requests.
//
// @Summary      Remove a cart line
// @Description  Removes the line with the given ID from the cart. Removing an unknown line is reported as not found.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        lineID path string true "Cart line identifier"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart with totals"
// @Failure      404 {object} dto.ErrorResponse "Unknown cart line"
// @Router       /api/cart/lines/{lineID} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)
	lineID := c.Param("lineID")

	result := h.carts.RemoveLine(c.Request.Context(), sessionID, lineID)
	if !result.OK {
		metrics.RecordCartOperation("remove_line", "rejected")
		builder.Rejected(result.Reason)
		return
	}

	metrics.RecordCartOperation("remove_line", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the cart
// @Description  Removes all lines from the cart. Applied coupons survive unless coupons=true is passed.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        coupons query bool false "Also remove applied coupons"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Emptied cart"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	clearCoupons := c.Query("coupons") == "true"
	h.carts.Clear(c.Request.Context(), sessionID, clearCoupons)

	metrics.RecordCartOperation("clear", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// ApplyCoupon handles POST /api/cart/coupons requests.
//
// @Summary      Apply a coupon
// @Description  Applies a coupon code to the cart. Codes are case-insensitive. Eligibility is checked against the undiscounted subtotal.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        request body dto.ApplyCouponRequest true "Coupon code"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart with totals"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown coupon code"
// @Failure      422 {object} dto.ErrorResponse "Coupon rejected by a rule"
// @Router       /api/cart/coupons [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	var req dto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	result := h.carts.ApplyCoupon(c.Request.Context(), sessionID, req.Code)
	if !result.OK {
		metrics.RecordCouponRejection(string(result.Reason))

		if loggingService, exists := c.Get("logging_service"); exists {
			if ls, ok := loggingService.(service.LoggingService); ok {
				middleware.AuditLog(ls, c, "apply_coupon_rejected", "Coupon rejected", map[string]interface{}{
					"code":   req.Code,
					"reason": string(result.Reason),
				})
			}
		}

		builder.Rejected(result.Reason)
		return
	}

	metrics.RecordCartOperation("apply_coupon", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// RemoveCoupon handles DELETE /api/cart/coupons/:code requests.
//
// @Summary      Remove an applied coupon
// @Description  Removes the coupon from the cart. Removing a coupon that is not applied is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        code path string true "Coupon code"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart with totals"
// @Router       /api/cart/coupons/{code} [delete]
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	h.carts.RemoveCoupon(c.Request.Context(), sessionID, c.Param("code"))

	metrics.RecordCartOperation("remove_coupon", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// SetDelivery handles PUT /api/cart/delivery requests.
//
// @Summary      Select delivery method and zone
// @Description  Sets the delivery method (delivery or pickup) and, for delivery, the zone. An unknown zone is stored but reported so the client can warn the customer; pricing falls back to the default fee.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        request body dto.SetDeliveryRequest true "Delivery selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart with totals"
// @Failure      400 {object} dto.ErrorResponse "Invalid delivery method or unknown zone"
// @Router       /api/cart/delivery [put]
func (h *CartHandler) SetDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	var req dto.SetDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result := h.carts.SetDeliveryMethod(c.Request.Context(), sessionID, model.DeliveryMethod(req.Method))
	if !result.OK {
		metrics.RecordCartOperation("set_delivery", "rejected")
		builder.Rejected(result.Reason)
		return
	}

	if req.Zone != "" {
		result = h.carts.SetDeliveryZone(c.Request.Context(), sessionID, req.Zone)
		if !result.OK {
			metrics.RecordCartOperation("set_delivery", "rejected")
			builder.Rejected(result.Reason)
			return
		}
	}

	metrics.RecordCartOperation("set_delivery", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}

// SetVIP handles PUT /api/cart/vip requests.
//
// @Summary      Toggle VIP pricing
// @Description  Sets the VIP flag on the session's cart. VIP carts get the VIP percentage off the subtotal and free delivery.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        request body dto.SetVIPRequest true "VIP flag"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart with totals"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/cart/vip [put]
func (h *CartHandler) SetVIP(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	var req dto.SetVIPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.carts.SetVIP(c.Request.Context(), sessionID, req.VIP)

	metrics.RecordCartOperation("set_vip", "success")
	builder.SuccessOK(h.cartResponse(c, sessionID))
}
