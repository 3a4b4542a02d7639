package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lulukitchen/cart-service/internal/domain/dto"
	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/i18n"
	"github.com/lulukitchen/cart-service/internal/middleware"
	"github.com/lulukitchen/cart-service/internal/service"
)

// AdminHandler provides HTTP handlers for the admin configuration
// surface: coupons, delivery zones and the catalog.
type AdminHandler struct {
	pricingConfig service.PricingConfigService
	catalog       service.CatalogService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(pricingConfig service.PricingConfigService, catalog service.CatalogService) *AdminHandler {
	return &AdminHandler{
		pricingConfig: pricingConfig,
		catalog:       catalog,
	}
}

// adminEmail returns the authenticated admin's email for audit fields.
func adminEmail(c *gin.Context) string {
	return c.GetString("user_email")
}

func (h *AdminHandler) configError(builder *ResponseBuilder, err error) {
	if err == service.ErrRepositoryNotConfigured {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// ListCoupons handles GET /api/admin/coupons requests.
//
// @Summary      List coupon rules
// @Description  Returns the persisted coupon rules, including inactive ones.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of coupons to return"
// @Success      200 {object} dto.SuccessResponse{data=dto.CouponsResponse} "Coupon rules"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Configuration storage unavailable"
// @Router       /api/admin/coupons [get]
func (h *AdminHandler) ListCoupons(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	coupons, err := h.pricingConfig.Coupons(c.Request.Context(), limit)
	if err != nil {
		h.configError(builder, err)
		return
	}

	builder.SuccessOK(dto.CouponsResponse{Coupons: coupons, Count: len(coupons)})
}

// UpsertCoupon handles PUT /api/admin/coupons requests.
//
// @Summary      Create or update a coupon
// @Description  Saves a coupon rule and refreshes the live registry. Codes are normalized to upper-case.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertCouponRequest true "Coupon rule"
// @Success      200 {object} dto.SuccessResponse{data=model.DiscountRule} "Saved coupon"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Configuration storage unavailable"
// @Router       /api/admin/coupons [put]
func (h *AdminHandler) UpsertCoupon(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	minSubtotal := decimal.Zero
	if req.MinOrderSubtotal != "" {
		minSubtotal, err = decimal.NewFromString(req.MinOrderSubtotal)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
	}

	rule := model.DiscountRule{
		Code:             req.Code,
		Type:             model.DiscountType(req.Type),
		Value:            value,
		MinOrderSubtotal: minSubtotal,
		Description:      req.Description,
		Active:           req.Active,
	}

	saved, err := h.pricingConfig.UpsertCoupon(c.Request.Context(), rule, adminEmail(c))
	if err != nil {
		h.configError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "admin_update_coupons", "Coupon saved", map[string]interface{}{
				"code":   saved.Code,
				"active": saved.Active,
			})
		}
	}

	builder.SuccessOK(saved)
}

// SetCouponActive handles PATCH /api/admin/coupons/:code requests.
//
// @Summary      Activate or deactivate a coupon
// @Description  Toggles a coupon's active flag without changing its other fields. Inactive coupons are invisible to carts.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Coupon code"
// @Param        request body dto.SetCouponActiveRequest true "Active flag"
// @Success      200 {object} dto.SuccessResponse "Updated"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Configuration storage unavailable"
// @Router       /api/admin/coupons/{code} [patch]
func (h *AdminHandler) SetCouponActive(c *gin.Context) {
	builder := NewResponseBuilder(c)
	code := c.Param("code")

	var req dto.SetCouponActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.pricingConfig.SetCouponActive(c.Request.Context(), code, req.Active, adminEmail(c)); err != nil {
		h.configError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "admin_update_coupons", "Coupon active flag changed", map[string]interface{}{
				"code":   code,
				"active": req.Active,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{"code": code, "active": req.Active})
}

// ListZones handles GET /api/admin/zones requests.
//
// @Summary      List delivery zones
// @Description  Returns the persisted delivery zones, including inactive ones.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.ZonesResponse} "Delivery zones"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Configuration storage unavailable"
// @Router       /api/admin/zones [get]
func (h *AdminHandler) ListZones(c *gin.Context) {
	builder := NewResponseBuilder(c)

	zones, err := h.pricingConfig.Zones(c.Request.Context())
	if err != nil {
		h.configError(builder, err)
		return
	}

	builder.SuccessOK(dto.ZonesResponse{Zones: zones, Count: len(zones)})
}

// UpsertZone handles PUT /api/admin/zones requests.
//
// @Summary      Create or update a delivery zone
// @Description  Saves a delivery zone and refreshes the live zone table.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertZoneRequest true "Delivery zone"
// @Success      200 {object} dto.SuccessResponse{data=model.DeliveryZone} "Saved zone"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Configuration storage unavailable"
// @Router       /api/admin/zones [put]
func (h *AdminHandler) UpsertZone(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	fee, err := decimal.NewFromString(req.FlatFee)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	threshold, err := decimal.NewFromString(req.FreeThresholdSubtotal)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	zone := model.DeliveryZone{
		Key:                   req.Key,
		Name:                  req.Name,
		FlatFee:               fee,
		FreeThresholdSubtotal: threshold,
		EstimatedTime:         req.EstimatedTime,
		Active:                req.Active,
	}

	saved, err := h.pricingConfig.UpsertZone(c.Request.Context(), zone, adminEmail(c))
	if err != nil {
		h.configError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "admin_update_zones", "Delivery zone saved", map[string]interface{}{
				"key":    saved.Key,
				"active": saved.Active,
			})
		}
	}

	builder.SuccessOK(saved)
}

// ListMenu handles GET /api/admin/menu requests.
//
// @Summary      List menu items for administration
// @Description  Returns the full menu snapshot, including unavailable items.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.MenuResponse} "Menu items"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/admin/menu [get]
func (h *AdminHandler) ListMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.catalog.MenuItems(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.MenuResponse{Items: items, Count: len(items)})
}

// UpsertMenuItem handles PUT /api/admin/menu requests.
//
// @Summary      Create or update a menu item
// @Description  Saves a menu item and invalidates the catalog snapshot.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertMenuItemRequest true "Menu item"
// @Success      200 {object} dto.SuccessResponse{data=model.MenuItem} "Saved item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Router       /api/admin/menu [put]
func (h *AdminHandler) UpsertMenuItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	discounted := decimal.Zero
	if req.DiscountedPrice != "" {
		discounted, err = decimal.NewFromString(req.DiscountedPrice)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
	}

	item := model.MenuItem{
		ID:              req.ID,
		Name:            req.Name,
		BasePrice:       basePrice,
		DiscountedPrice: discounted,
		Category:        req.Category,
		Spicy:           req.Spicy,
		Vegetarian:      req.Vegetarian,
		Vegan:           req.Vegan,
		GlutenFree:      req.GlutenFree,
		Available:       req.Available,
	}

	saved, err := h.catalog.UpsertMenuItem(c.Request.Context(), item, adminEmail(c))
	if err != nil {
		h.configError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "admin_update_menu", "Menu item saved", map[string]interface{}{
				"id":        saved.ID,
				"available": saved.Available,
			})
		}
	}

	builder.SuccessOK(saved)
}

// UpsertExtra handles PUT /api/admin/extras requests.
//
// @Summary      Create or update an add-on
// @Description  Saves an add-on option and invalidates the catalog snapshot.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertExtraRequest true "Add-on option"
// @Success      200 {object} dto.SuccessResponse{data=model.ExtraOption} "Saved add-on"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Router       /api/admin/extras [put]
func (h *AdminHandler) UpsertExtra(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	extra := model.ExtraOption{
		ID:       req.ID,
		Name:     req.Name,
		Price:    price,
		Category: req.Category,
	}

	saved, err := h.catalog.UpsertExtra(c.Request.Context(), extra, adminEmail(c))
	if err != nil {
		h.configError(builder, err)
		return
	}

	builder.SuccessOK(saved)
}
