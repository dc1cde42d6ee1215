package memory

import (
	"time"

	"github.com/doulovera/proyx-app/internal/domain"
)

// Catalog is the sample data served by the in-memory backend.
type Catalog struct {
	Events   []domain.Event
	Stores   []domain.Store
	Products []domain.Product
}

// SampleCatalog builds the demo catalog with event dates relative to now,
// so "today" and "this week" filters always have something to show.
func SampleCatalog(now time.Time) Catalog {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	at := func(days, hour int) time.Time {
		return day.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour)
	}

	stores := []domain.Store{
		{
			ID: "store-001", Name: "La Esquina Café", Category: domain.StoreCategoryCafe,
			Description: "Café de especialidad y repostería artesanal.",
			Rating:      ptr(4.7), ReviewCount: ptr(312), DeliveryTimeMinutes: ptr(25),
			Address: "Av. Principal 123", Phone: "+15550100001", IsOpen: ptr(true), PriceLevel: ptr(2),
			Features: []string{"wifi", "pet_friendly"}, IsFeatured: true,
		},
		{
			ID: "store-002", Name: "Panadería San José", Category: domain.StoreCategoryBakery,
			Description: "Pan de masa madre horneado cada mañana.",
			Rating:      ptr(4.5), ReviewCount: ptr(128), DeliveryTimeMinutes: ptr(30),
			Address: "Calle 8 #45", IsOpen: ptr(true), PriceLevel: ptr(1),
			IsFeatured: true,
		},
		{
			ID: "store-003", Name: "Mercado Verde", Category: domain.StoreCategoryMarket,
			Description: "Productos orgánicos de productores locales.",
			Rating:      ptr(4.8), ReviewCount: ptr(96), DeliveryTimeMinutes: ptr(45),
			Address: "Plaza Central s/n", IsOpen: ptr(false), PriceLevel: ptr(2),
			Features: []string{"organic", "delivery"}, IsFeatured: true,
		},
		{
			ID: "store-004", Name: "Taquería El Fuego", Category: domain.StoreCategoryRestaurant,
			Description: "Tacos al pastor y salsas de la casa.",
			Rating:      ptr(4.3), ReviewCount: ptr(540), DeliveryTimeMinutes: ptr(20),
			Address: "Calle Luna 9", IsOpen: ptr(true), PriceLevel: ptr(1),
			Features: []string{"delivery", "late_night"},
		},
		{
			ID: "store-005", Name: "Bar Azotea", Category: domain.StoreCategoryBar,
			Description: "Coctelería de autor con vista a la ciudad.",
			Rating:      ptr(4.1), ReviewCount: ptr(77),
			Address: "Torre Norte piso 12", IsOpen: ptr(false), PriceLevel: ptr(3),
		},
		{
			ID: "store-006", Name: "Farmacia Central", Category: domain.StoreCategoryPharmacy,
			Address: "Av. Salud 300", Phone: "+15550100006",
		},
	}

	products := []domain.Product{
		{
			ID: "prod-001", Name: "Cappuccino", Category: domain.ProductCategoryDrinks,
			Description: "Espresso doble con leche vaporizada.", BasePrice: 350,
			Store: stores[0].Ref(), Rating: ptr(4.8), InStock: true, IsFeatured: true, IsTrending: true,
		},
		{
			ID: "prod-002", Name: "Croissant de almendra", Category: domain.ProductCategoryBakery,
			BasePrice: 280, OriginalPrice: ptr(int64(350)),
			Store: stores[0].Ref(), Rating: ptr(4.6), InStock: true, IsFeatured: true,
		},
		{
			ID: "prod-003", Name: "Pan de masa madre", Category: domain.ProductCategoryBakery,
			Description: "Hogaza de 800 g.", BasePrice: 550, IsVegan: true,
			Store: stores[1].Ref(), Rating: ptr(4.9), InStock: true, IsTrending: true,
		},
		{
			ID: "prod-004", Name: "Conchas", Category: domain.ProductCategoryBakery,
			BasePrice: 120, Store: stores[1].Ref(), InStock: false,
		},
		{
			ID: "prod-005", Name: "Canasta de verduras", Category: domain.ProductCategoryGrocery,
			Description: "Verduras de temporada para una semana.", BasePrice: 1800, OriginalPrice: ptr(int64(2400)),
			IsOrganic: true, IsVegan: true, IsGlutenFree: true,
			Store: stores[2].Ref(), Rating: ptr(4.7), InStock: true, IsFeatured: true,
		},
		{
			ID: "prod-006", Name: "Miel de abeja", Category: domain.ProductCategoryGrocery,
			BasePrice: 890, IsOrganic: true, IsGlutenFree: true,
			Store: stores[2].Ref(), Rating: ptr(4.4), InStock: true,
		},
		{
			ID: "prod-007", Name: "Tacos al pastor", Category: domain.ProductCategoryFood,
			Description: "Orden de cinco tacos con piña.", BasePrice: 950, IsSpicy: true,
			Store: stores[3].Ref(), Rating: ptr(4.5), InStock: true, IsTrending: true,
		},
		{
			ID: "prod-008", Name: "Salsa habanero", Category: domain.ProductCategoryFood,
			BasePrice: 400, IsSpicy: true, IsVegan: true, IsGlutenFree: true,
			Store: stores[3].Ref(), InStock: true,
		},
		{
			ID: "prod-009", Name: "Agua de bienvenida", Category: domain.ProductCategoryDrinks,
			BasePrice: 0, Store: stores[4].Ref(), InStock: true,
		},
		{
			ID: "prod-010", Name: "Gel antibacterial", Category: domain.ProductCategoryHealth,
			BasePrice: 325, Store: stores[5].Ref(), InStock: true,
		},
	}

	events := []domain.Event{
		{
			ID: "evt-001", Title: "Festival de Tacos", Category: domain.EventCategoryGastronomic,
			Description: "Los mejores taqueros de la ciudad en un solo lugar.",
			StartsAt:    at(0, 19), EndsAt: ptr(at(0, 23)),
			Location: "Parque Central", Address: "Av. Principal s/n",
			Price: 1500, Capacity: 200, CurrentAttendees: 150,
			Organizer: "Taquería El Fuego", IsFeatured: true, IsSponsored: true,
			Includes: []string{"3 tacos", "1 bebida"}, Tags: []string{"comida", "aire libre"},
		},
		{
			ID: "evt-002", Title: "Noche de Jazz", Category: domain.EventCategoryMusic,
			StartsAt: at(1, 21), Location: "Bar Azotea",
			Price: 2500, Capacity: 80, CurrentAttendees: 72,
			Organizer: "Bar Azotea", IsFeatured: true,
			Requirements: []string{"Mayores de 18 años"},
		},
		{
			ID: "evt-003", Title: "Taller de Pan de Masa Madre", Category: domain.EventCategoryWorkshop,
			StartsAt: at(3, 10), EndsAt: ptr(at(3, 13)), Location: "Panadería San José",
			Price: 4500, Capacity: 12, CurrentAttendees: 12,
			Organizer: "Panadería San José",
			Includes: []string{"Ingredientes", "Delantal"},
		},
		{
			ID: "evt-004", Title: "Mercado de Productores", Category: domain.EventCategoryMarket,
			StartsAt: at(2, 8), EndsAt: ptr(at(2, 14)), Location: "Plaza Central",
			Price: 0, Capacity: 500, CurrentAttendees: 120,
			Organizer: "Mercado Verde", IsFeatured: true,
		},
		{
			ID: "evt-005", Title: "Cata de Café", Category: domain.EventCategoryGastronomic,
			StartsAt: at(9, 17), Location: "La Esquina Café",
			Price: 1200, Capacity: 20, CurrentAttendees: 5,
			Organizer: "La Esquina Café",
		},
		{
			ID: "evt-006", Title: "Exposición de Arte Local", Category: domain.EventCategoryArt,
			StartsAt: at(12, 11), Location: "Casa de la Cultura",
			Price: 0, Capacity: 150, CurrentAttendees: 40,
		},
		{
			ID: "evt-007", Title: "Carrera 5K", Category: domain.EventCategorySports,
			StartsAt: at(16, 7), Location: "Malecón",
			Price: 3000, Capacity: 300, CurrentAttendees: 260,
			Organizer: "Club Corredores", IsSponsored: true,
		},
		{
			ID: "evt-008", Title: "Brunch Solidario", Category: domain.EventCategoryGastronomic,
			StartsAt: at(-2, 11), Location: "La Esquina Café",
			Price: 1800, Capacity: 40, CurrentAttendees: 38,
		},
	}

	return Catalog{Events: events, Stores: stores, Products: products}
}

func ptr[T any](v T) *T {
	return &v
}
