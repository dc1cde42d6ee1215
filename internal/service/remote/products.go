package remote

import (
	"context"
	"net/url"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// ProductsService calls the product listing endpoints.
type ProductsService struct {
	client *Client
}

// List returns one page of products.
func (s *ProductsService) List(ctx context.Context, page pagination.Params) (pagination.List[domain.Product], error) {
	q := url.Values{}
	page.Encode(q)
	return fetchList[domain.Product](ctx, s.client, "products", "/products", q)
}

// Featured returns the featured products.
func (s *ProductsService) Featured(ctx context.Context) ([]domain.Product, error) {
	return fetchItems[domain.Product](ctx, s.client, "products", "/products/featured")
}

// Trending returns the trending products.
func (s *ProductsService) Trending(ctx context.Context) ([]domain.Product, error) {
	return fetchItems[domain.Product](ctx, s.client, "products", "/products/trending")
}

// Search filters products by category and text.
func (s *ProductsService) Search(ctx context.Context, q service.ProductQuery) (pagination.List[domain.Product], error) {
	return fetchList[domain.Product](ctx, s.client, "products", "/products", q.Values())
}
