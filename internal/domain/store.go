package domain

// StoreCategory classifies a store.
type StoreCategory string

// Store category constants.
const (
	StoreCategoryRestaurant StoreCategory = "restaurant"
	StoreCategoryCafe       StoreCategory = "cafe"
	StoreCategoryBakery     StoreCategory = "bakery"
	StoreCategoryMarket     StoreCategory = "market"
	StoreCategoryBar        StoreCategory = "bar"
	StoreCategoryPharmacy   StoreCategory = "pharmacy"
	StoreCategoryOther      StoreCategory = "other"
)

// ValidStoreCategories returns the set of valid store categories.
func ValidStoreCategories() []StoreCategory {
	return []StoreCategory{
		StoreCategoryRestaurant, StoreCategoryCafe, StoreCategoryBakery,
		StoreCategoryMarket, StoreCategoryBar, StoreCategoryPharmacy, StoreCategoryOther,
	}
}

// IsValidStoreCategory checks whether c is a known store category.
func IsValidStoreCategory(c StoreCategory) bool {
	for _, v := range ValidStoreCategories() {
		if v == c {
			return true
		}
	}
	return false
}

// Store is a local business listed in the app. Stores are never mutated
// after a fetch; a re-fetch replaces them.
type Store struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Description         string        `json:"description,omitempty"`
	Category            StoreCategory `json:"category"`
	ImageURL            string        `json:"image_url,omitempty"`
	Rating              *float64      `json:"rating,omitempty"`
	ReviewCount         *int          `json:"review_count,omitempty"`
	DeliveryTimeMinutes *int          `json:"delivery_time_minutes,omitempty"`
	Address             string        `json:"address,omitempty"`
	Phone               string        `json:"phone,omitempty"`
	IsOpen              *bool         `json:"is_open,omitempty"`
	// PriceLevel is 1 (cheap) to 4 (expensive).
	PriceLevel *int     `json:"price_level,omitempty"`
	Features   []string `json:"features,omitempty"`
	IsFeatured bool     `json:"is_featured"`
}

// Ref returns the weak reference products keep to this store.
func (s Store) Ref() *StoreRef {
	return &StoreRef{ID: s.ID, Name: s.Name}
}

// OpenNow reports the open flag, treating an unknown value as closed.
func (s Store) OpenNow() bool {
	return s.IsOpen != nil && *s.IsOpen
}
