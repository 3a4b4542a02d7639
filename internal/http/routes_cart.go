package http

import (
	"github.com/gin-gonic/gin"
	"github.com/lulukitchen/cart-service/internal/middleware"
)

// CartRoutes handles cart, checkout and catalog route registration.
type CartRoutes struct {
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
	catalogHandler  *CatalogHandler
}

// NewCartRoutes creates a new CartRoutes instance from the configured
// services.
func NewCartRoutes(cfg *RouterConfig) *CartRoutes {
	return &CartRoutes{
		cartHandler:     NewCartHandler(cfg.CartStore, cfg.Pricer, cfg.Catalog),
		checkoutHandler: NewCheckoutHandler(cfg.Checkout, cfg.Loyalty),
		catalogHandler:  NewCatalogHandler(cfg.Catalog, cfg.Zones),
	}
}

// RegisterPublicRoutes registers the catalog listings. These carry no
// session state and need no identification.
func (r *CartRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", r.catalogHandler.GetMenu)
	rg.GET("/extras", r.catalogHandler.GetExtras)
	rg.GET("/zones", r.catalogHandler.GetZones)
}

// RegisterSessionRoutes registers the customer-facing routes. Every
// route requires the X-Session-ID header; the session value scopes the
// cart, order history and loyalty account.
func (r *CartRoutes) RegisterSessionRoutes(rg *gin.RouterGroup) {
	session := rg.Group("")
	session.Use(middleware.RequireSession())

	cart := session.Group("/cart")
	{
		cart.GET("", r.cartHandler.GetCart)
		cart.DELETE("", r.cartHandler.ClearCart)
		cart.POST("/lines", r.cartHandler.AddLine)
		cart.PATCH("/lines/:lineID", r.cartHandler.SetQuantity)
		cart.DELETE("/lines/:lineID", r.cartHandler.RemoveLine)
		cart.POST("/coupons", r.cartHandler.ApplyCoupon)
		cart.DELETE("/coupons/:code", r.cartHandler.RemoveCoupon)
		cart.PUT("/delivery", r.cartHandler.SetDelivery)
		cart.PUT("/vip", r.cartHandler.SetVIP)
	}

	session.POST("/checkout", r.checkoutHandler.Checkout)
	session.GET("/orders", r.checkoutHandler.ListOrders)
	session.GET("/orders/:orderNumber", r.checkoutHandler.GetOrder)
	session.GET("/loyalty", r.checkoutHandler.GetLoyalty)
}
