package domain

import (
	"encoding/json"
	"math"
)

// ProductCategory classifies a product.
type ProductCategory string

// Product category constants.
const (
	ProductCategoryFood      ProductCategory = "food"
	ProductCategoryDrinks    ProductCategory = "drinks"
	ProductCategoryBakery    ProductCategory = "bakery"
	ProductCategoryGrocery   ProductCategory = "grocery"
	ProductCategoryHealth    ProductCategory = "health"
	ProductCategoryHousehold ProductCategory = "household"
)

// Dietary tag labels shown next to products.
const (
	TagOrganic    = "Orgánico"
	TagVegan      = "Vegano"
	TagGlutenFree = "Sin gluten"
	TagSpicy      = "Picante"
)

// StoreRef is a weak reference from a product to the store selling it.
type StoreRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Product is an item sold by a store. Prices are in cents.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      ProductCategory `json:"category"`
	BasePrice     int64           `json:"base_price"`
	OriginalPrice *int64          `json:"original_price,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsOrganic     bool            `json:"is_organic,omitempty"`
	IsVegan       bool            `json:"is_vegan,omitempty"`
	IsGlutenFree  bool            `json:"is_gluten_free,omitempty"`
	IsSpicy       bool            `json:"is_spicy,omitempty"`
	Store         *StoreRef       `json:"store,omitempty"`
	Rating        *float64        `json:"rating,omitempty"`
	InStock       bool            `json:"in_stock"`
	IsFeatured    bool            `json:"is_featured"`
	IsTrending    bool            `json:"is_trending"`
}

// IsFree reports whether the product costs nothing.
func (p Product) IsFree() bool {
	return p.BasePrice == 0
}

// DiscountPercentage is defined only when the original price is above the
// base price.
func (p Product) DiscountPercentage() (int, bool) {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.BasePrice {
		return 0, false
	}
	original := float64(*p.OriginalPrice)
	return int(math.Round((original - float64(p.BasePrice)) / original * 100)), true
}

// Tags lists the dietary labels that apply, in a fixed order.
func (p Product) Tags() []string {
	var tags []string
	if p.IsOrganic {
		tags = append(tags, TagOrganic)
	}
	if p.IsVegan {
		tags = append(tags, TagVegan)
	}
	if p.IsGlutenFree {
		tags = append(tags, TagGlutenFree)
	}
	if p.IsSpicy {
		tags = append(tags, TagSpicy)
	}
	return tags
}

type productAlias Product

// UnmarshalJSON migrates legacy product payloads: "price" becomes
// "base_price" and flat "store_id"/"store_name" become a StoreRef.
func (p *Product) UnmarshalJSON(data []byte) error {
	var wire struct {
		productAlias
		BasePrice       *int64 `json:"base_price"`
		LegacyPrice     *int64 `json:"price"`
		LegacyStoreID   string `json:"store_id"`
		LegacyStoreName string `json:"store_name"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*p = Product(wire.productAlias)
	switch {
	case wire.BasePrice != nil:
		p.BasePrice = *wire.BasePrice
	case wire.LegacyPrice != nil:
		p.BasePrice = *wire.LegacyPrice
	}
	if p.Store == nil && wire.LegacyStoreID != "" {
		p.Store = &StoreRef{ID: wire.LegacyStoreID, Name: wire.LegacyStoreName}
	}
	return nil
}
