package service

import (
	"net/url"
	"strings"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/pkg/pagination"
	"github.com/doulovera/proyx-app/pkg/textfold"
)

// EventQuery filters events by category and free text. Empty fields match
// everything.
type EventQuery struct {
	Category domain.EventCategory
	Query    string
	Page     pagination.Params
}

// Values encodes q as URL query parameters.
func (q EventQuery) Values() url.Values {
	return encode(string(q.Category), q.Query, q.Page)
}

// StoreQuery filters stores by category and free text.
type StoreQuery struct {
	Category domain.StoreCategory
	Query    string
	Page     pagination.Params
}

// Values encodes q as URL query parameters.
func (q StoreQuery) Values() url.Values {
	return encode(string(q.Category), q.Query, q.Page)
}

// ProductQuery filters products by category and free text.
type ProductQuery struct {
	Category domain.ProductCategory
	Query    string
	Page     pagination.Params
}

// Values encodes q as URL query parameters.
func (q ProductQuery) Values() url.Values {
	return encode(string(q.Category), q.Query, q.Page)
}

func encode(category, query string, page pagination.Params) url.Values {
	v := url.Values{}
	if category != "" {
		v.Set("category", category)
	}
	if q := strings.TrimSpace(query); q != "" {
		v.Set("q", q)
	}
	page.Normalize().Encode(v)
	return v
}

// ParseEventQuery reads an EventQuery from URL parameters.
func ParseEventQuery(v url.Values) EventQuery {
	return EventQuery{
		Category: domain.EventCategory(v.Get("category")),
		Query:    v.Get("q"),
		Page:     pagination.FromValues(v),
	}
}

// ParseStoreQuery reads a StoreQuery from URL parameters.
func ParseStoreQuery(v url.Values) StoreQuery {
	return StoreQuery{
		Category: domain.StoreCategory(v.Get("category")),
		Query:    v.Get("q"),
		Page:     pagination.FromValues(v),
	}
}

// ParseProductQuery reads a ProductQuery from URL parameters.
func ParseProductQuery(v url.Values) ProductQuery {
	return ProductQuery{
		Category: domain.ProductCategory(v.Get("category")),
		Query:    v.Get("q"),
		Page:     pagination.FromValues(v),
	}
}

// Matches reports whether any text contains query, ignoring case and
// accents. An empty query matches everything.
func Matches(query string, texts ...string) bool {
	query = textfold.Fold(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, t := range texts {
		if strings.Contains(textfold.Fold(t), query) {
			return true
		}
	}
	return false
}
