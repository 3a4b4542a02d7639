// Package model defines the core domain entities for the cart service.
package model

import (
	"github.com/shopspring/decimal"
)

// MenuItem represents a dish from the restaurant catalog.
// Items are read-only to the cart core; they are loaded from the
// catalog collections and never mutated by cart operations.
//
// @Description Menu item with base and optional discounted pricing
type MenuItem struct {
	// ID is the catalog identifier of the item
	ID string `bson:"_id" json:"id" example:"szechuan-beef"`
	// Name is the display name of the item
	Name string `bson:"name" json:"name" example:"Szechuan Beef"`
	// BasePrice is the regular price of the item
	BasePrice decimal.Decimal `bson:"base_price" json:"base_price" swaggertype:"string" example:"65"`
	// DiscountedPrice is the promotional price, zero when not on promotion
	DiscountedPrice decimal.Decimal `bson:"discounted_price,omitempty" json:"discounted_price,omitempty" swaggertype:"string" example:"55"`
	// Category groups items for display (main, starter, drink, ...)
	Category string `bson:"category" json:"category" example:"main"`
	// Dietary flags
	Vegetarian bool `bson:"vegetarian,omitempty" json:"vegetarian,omitempty"`
	Vegan      bool `bson:"vegan,omitempty" json:"vegan,omitempty"`
	GlutenFree bool `bson:"gluten_free,omitempty" json:"gluten_free,omitempty"`
	Spicy      bool `bson:"spicy,omitempty" json:"spicy,omitempty"`
	// Available marks items that can currently be ordered
	Available bool `bson:"available" json:"available"`
}

// EffectivePrice returns the discounted price when one is set and positive,
// otherwise the base price.
func (m MenuItem) EffectivePrice() decimal.Decimal {
	if m.DiscountedPrice.IsPositive() {
		return m.DiscountedPrice
	}
	return m.BasePrice
}

// ExtraOption represents an optional add-on (rice, sauce, vegetable,
// protein) priced independently and attached to a cart line.
//
// @Description Priced add-on attachable to a cart line
type ExtraOption struct {
	ID       string          `bson:"_id" json:"id" example:"steamed-rice"`
	Name     string          `bson:"name" json:"name" example:"Steamed Rice"`
	Price    decimal.Decimal `bson:"price" json:"price" swaggertype:"string" example:"18"`
	Category string          `bson:"category" json:"category" example:"rice"`
}

// ExtrasTotal sums the prices of a set of extras.
func ExtrasTotal(extras []ExtraOption) decimal.Decimal {
	total := decimal.Zero
	for _, e := range extras {
		total = total.Add(e.Price)
	}
	return total
}
