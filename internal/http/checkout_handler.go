package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/internal/domain/dto"
	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/i18n"
	"github.com/lulukitchen/cart-service/internal/metrics"
	"github.com/lulukitchen/cart-service/internal/middleware"
	"github.com/lulukitchen/cart-service/internal/service"
)

// CheckoutHandler provides HTTP handlers for checkout, order history and
// loyalty routes.
type CheckoutHandler struct {
	checkout service.CheckoutService
	loyalty  service.LoyaltyService
}

// NewCheckoutHandler creates a new CheckoutHandler instance.
func NewCheckoutHandler(checkout service.CheckoutService, loyalty service.LoyaltyService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		loyalty:  loyalty,
	}
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Place an order
// @Description  Converts the session's cart into an immutable order draft, assigns an order number, awards loyalty points, and empties the cart. Supports idempotency via Idempotency-Key header.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        X-Session-ID header string true "Session identifier"
// @Param        request body dto.CheckoutRequest true "Customer details and payment method"
// @Success      201 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Order placed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Empty cart or insufficient loyalty points"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Order storage unavailable"
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)
	sessionID := middleware.GetSessionID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	customer := model.CustomerInfo{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
		Notes:   req.Customer.Notes,
	}

	order, result, err := h.checkout.Checkout(c.Request.Context(), sessionID, customer, req.PaymentMethod, req.RedeemPoints)
	if err != nil {
		metrics.RecordCheckout("error")

		if loggingService, exists := c.Get("logging_service"); exists {
			if ls, ok := loggingService.(service.LoggingService); ok {
				middleware.AuditLogError(ls, c, "checkout_failed", "Checkout failed", err, map[string]interface{}{
					"payment_method": req.PaymentMethod,
				})
			}
		}

		if err == service.ErrOrdersNotConfigured {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if !result.OK {
		metrics.RecordCheckout("rejected")
		builder.Rejected(result.Reason)
		return
	}

	metrics.RecordCheckout("success")

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "checkout", "Order placed", map[string]interface{}{
				"order_number":   order.OrderNumber,
				"total":          order.Totals.Total.String(),
				"points_awarded": order.PointsAwarded,
			})
		}
	}

	response := dto.CheckoutResponse{
		Order:   order,
		Message: i18n.GetTranslator().Translate(i18n.SuccessKeyOrderPlaced, locale),
	}
	builder.SuccessCreated(response)
}

// ListOrders handles GET /api/orders requests.
//
// @Summary      List the session's orders
// @Description  Returns the session's order history, newest first. The limit query parameter caps the page size.
// @Tags         Checkout
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        limit query int false "Maximum number of orders to return"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderListResponse} "Order history"
// @Failure      503 {object} dto.ErrorResponse "Order storage unavailable"
// @Router       /api/orders [get]
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	orders, err := h.checkout.History(c.Request.Context(), sessionID, limit)
	if err != nil {
		if err == service.ErrOrdersNotConfigured {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.OrderListResponse{Orders: orders, Count: len(orders)})
}

// GetOrder handles GET /api/orders/:orderNumber requests.
//
// @Summary      Get a single order
// @Description  Returns the order draft with the given order number.
// @Tags         Checkout
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Param        orderNumber path string true "Order number"
// @Success      200 {object} dto.SuccessResponse{data=model.OrderDraft} "Order draft"
// @Failure      404 {object} dto.ErrorResponse "Unknown order number"
// @Failure      503 {object} dto.ErrorResponse "Order storage unavailable"
// @Router       /api/orders/{orderNumber} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	order, err := h.checkout.Order(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		if err == service.ErrOrdersNotConfigured {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	// Sessions can only read their own orders.
	if order == nil || order.SessionID != sessionID {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(order)
}

// GetLoyalty handles GET /api/loyalty requests.
//
// @Summary      Get the session's loyalty standing
// @Description  Returns the loyalty account (points balance, order count, VIP flag) for the session.
// @Tags         Loyalty
// @Produce      json
// @Param        X-Session-ID header string true "Session identifier"
// @Success      200 {object} dto.SuccessResponse "Loyalty account"
// @Failure      503 {object} dto.ErrorResponse "Loyalty storage unavailable"
// @Router       /api/loyalty [get]
func (h *CheckoutHandler) GetLoyalty(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	account, err := h.loyalty.Account(c.Request.Context(), sessionID)
	if err != nil {
		if err == service.ErrRepositoryNotConfigured {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(account)
}
