// Package main is the entry point for the cart-service application.
//
// @title           Lulu Kitchen Cart API
// @version         1.0.0
// @description     Session-scoped shopping cart, pricing and checkout API for the Lulu Kitchen restaurant.
//
//	Carts are keyed by the X-Session-ID header. Pricing applies coupon, VIP and
//	loyalty discounts plus zone-based delivery fees. Checkout converts a cart
//	into an immutable order draft and awards loyalty points.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@lulukitchen.co.il
// @contact.url    https://github.com/lulukitchen/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token for admin endpoints. Format: "Bearer {token}"
//
// @tag.name        Cart
// @tag.description Session cart operations
//
// @tag.name        Checkout
// @tag.description Checkout and order history
//
// @tag.name        Catalog
// @tag.description Menu, extras and delivery zones
//
// @tag.name        Loyalty
// @tag.description Loyalty account endpoints
//
// @tag.name        Admin
// @tag.description Operator configuration endpoints
//
// @tag.name        Auth
// @tag.description Admin authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/lulukitchen/cart-service/docs" // swagger docs

	"github.com/lulukitchen/cart-service/config"
	"github.com/lulukitchen/cart-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
