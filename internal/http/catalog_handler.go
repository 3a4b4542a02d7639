package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/internal/domain/dto"
	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/i18n"
	"github.com/lulukitchen/cart-service/internal/service"
)

// CatalogHandler provides HTTP handlers for the public menu, extras and
// delivery zone listings.
type CatalogHandler struct {
	catalog service.CatalogService
	zones   *service.ZoneRegistry
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService, zones *service.ZoneRegistry) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		zones:   zones,
	}
}

// GetMenu handles GET /api/menu requests.
//
// @Summary      List menu items
// @Description  Returns the current menu snapshot, including items temporarily marked unavailable.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.MenuResponse} "Menu items"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menu [get]
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.catalog.MenuItems(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.MenuResponse{Items: items, Count: len(items)})
}

// GetExtras handles GET /api/extras requests.
//
// @Summary      List add-on options
// @Description  Returns the add-ons that can be attached to cart lines.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ExtrasResponse} "Add-on options"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/extras [get]
func (h *CatalogHandler) GetExtras(c *gin.Context) {
	builder := NewResponseBuilder(c)

	extras, err := h.catalog.Extras(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.ExtrasResponse{Extras: extras, Count: len(extras)})
}

// GetZones handles GET /api/zones requests.
//
// @Summary      List delivery zones
// @Description  Returns the active delivery zones with their fees and free-delivery thresholds.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ZonesResponse} "Delivery zones"
// @Router       /api/zones [get]
func (h *CatalogHandler) GetZones(c *gin.Context) {
	builder := NewResponseBuilder(c)

	all := h.zones.Zones()
	zones := make([]model.DeliveryZone, 0, len(all))
	for _, z := range all {
		if z.Active {
			zones = append(zones, z)
		}
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].Key < zones[j].Key })

	builder.SuccessOK(dto.ZonesResponse{Zones: zones, Count: len(zones)})
}
