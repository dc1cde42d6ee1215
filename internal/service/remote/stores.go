package remote

import (
	"context"
	"net/url"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// StoresService calls the store listing endpoints.
type StoresService struct {
	client *Client
}

// List returns one page of stores.
func (s *StoresService) List(ctx context.Context, page pagination.Params) (pagination.List[domain.Store], error) {
	q := url.Values{}
	page.Encode(q)
	return fetchList[domain.Store](ctx, s.client, "stores", "/stores", q)
}

// Featured returns the featured stores.
func (s *StoresService) Featured(ctx context.Context) ([]domain.Store, error) {
	return fetchItems[domain.Store](ctx, s.client, "stores", "/stores/featured")
}

// Search filters stores by category and text.
func (s *StoresService) Search(ctx context.Context, q service.StoreQuery) (pagination.List[domain.Store], error) {
	return fetchList[domain.Store](ctx, s.client, "stores", "/stores", q.Values())
}
