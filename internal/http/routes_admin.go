package http

import (
	"github.com/gin-gonic/gin"
)

// AdminRoutes handles the JWT-protected configuration routes.
type AdminRoutes struct {
	handler *AdminHandler
}

// NewAdminRoutes creates a new AdminRoutes instance from the configured
// services.
func NewAdminRoutes(cfg *RouterConfig) *AdminRoutes {
	return &AdminRoutes{
		handler: NewAdminHandler(cfg.PricingConfig, cfg.Catalog),
	}
}

// RegisterProtectedRoutes registers the admin routes on a group that
// already carries JWT authentication.
func (r *AdminRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	admin := protected.Group("/admin")
	{
		admin.GET("/coupons", r.handler.ListCoupons)
		admin.PUT("/coupons", r.handler.UpsertCoupon)
		admin.PATCH("/coupons/:code", r.handler.SetCouponActive)
		admin.GET("/zones", r.handler.ListZones)
		admin.PUT("/zones", r.handler.UpsertZone)
		admin.GET("/menu", r.handler.ListMenu)
		admin.PUT("/menu", r.handler.UpsertMenuItem)
		admin.PUT("/extras", r.handler.UpsertExtra)
	}
}
