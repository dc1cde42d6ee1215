package memory

import (
	"context"
	"sort"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// EventsService lists the sample events.
type EventsService struct {
	b *Backend
}

// List returns one page of all events ordered by start time.
func (s *EventsService) List(_ context.Context, page pagination.Params) (pagination.List[domain.Event], error) {
	return pagination.Slice(s.b.snapshotEvents(), page), nil
}

// Featured returns featured events that have not started.
func (s *EventsService) Featured(_ context.Context) ([]domain.Event, error) {
	now := s.b.now()
	return filter(s.b.snapshotEvents(), func(e domain.Event) bool {
		return e.IsFeatured && e.IsUpcoming(now)
	}), nil
}

// Upcoming returns events that have not started, soonest first.
func (s *EventsService) Upcoming(_ context.Context) ([]domain.Event, error) {
	now := s.b.now()
	return filter(s.b.snapshotEvents(), func(e domain.Event) bool {
		return e.IsUpcoming(now)
	}), nil
}

// Trending returns the upcoming events with the most attendees.
func (s *EventsService) Trending(ctx context.Context) ([]domain.Event, error) {
	events, _ := s.Upcoming(ctx)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CurrentAttendees > events[j].CurrentAttendees
	})
	if len(events) > trendingLimit {
		events = events[:trendingLimit]
	}
	return events, nil
}

// Search filters events by category and by text in title, description,
// location or organizer.
func (s *EventsService) Search(_ context.Context, q service.EventQuery) (pagination.List[domain.Event], error) {
	matched := filter(s.b.snapshotEvents(), func(e domain.Event) bool {
		if q.Category != "" && e.Category != q.Category {
			return false
		}
		return service.Matches(q.Query, e.Title, e.Description, e.Location, e.Organizer)
	})
	return pagination.Slice(matched, q.Page), nil
}

// StoresService lists the sample stores.
type StoresService struct {
	b *Backend
}

// List returns one page of stores.
func (s *StoresService) List(_ context.Context, page pagination.Params) (pagination.List[domain.Store], error) {
	return pagination.Slice(s.b.snapshotStores(), page), nil
}

// Featured returns the featured stores.
func (s *StoresService) Featured(_ context.Context) ([]domain.Store, error) {
	return filter(s.b.snapshotStores(), func(st domain.Store) bool { return st.IsFeatured }), nil
}

// Search filters stores by category and by text in name or description.
func (s *StoresService) Search(_ context.Context, q service.StoreQuery) (pagination.List[domain.Store], error) {
	matched := filter(s.b.snapshotStores(), func(st domain.Store) bool {
		if q.Category != "" && st.Category != q.Category {
			return false
		}
		return service.Matches(q.Query, st.Name, st.Description)
	})
	return pagination.Slice(matched, q.Page), nil
}

// ProductsService lists the sample products.
type ProductsService struct {
	b *Backend
}

// List returns one page of products.
func (s *ProductsService) List(_ context.Context, page pagination.Params) (pagination.List[domain.Product], error) {
	return pagination.Slice(s.b.snapshotProducts(), page), nil
}

// Featured returns the featured products.
func (s *ProductsService) Featured(_ context.Context) ([]domain.Product, error) {
	return filter(s.b.snapshotProducts(), func(p domain.Product) bool { return p.IsFeatured }), nil
}

// Trending returns the trending products.
func (s *ProductsService) Trending(_ context.Context) ([]domain.Product, error) {
	return filter(s.b.snapshotProducts(), func(p domain.Product) bool { return p.IsTrending }), nil
}

// Search filters products by category and by text in name, description or
// store name.
func (s *ProductsService) Search(_ context.Context, q service.ProductQuery) (pagination.List[domain.Product], error) {
	matched := filter(s.b.snapshotProducts(), func(p domain.Product) bool {
		if q.Category != "" && p.Category != q.Category {
			return false
		}
		storeName := ""
		if p.Store != nil {
			storeName = p.Store.Name
		}
		return service.Matches(q.Query, p.Name, p.Description, storeName)
	})
	return pagination.Slice(matched, q.Page), nil
}

func (b *Backend) snapshotEvents() []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneAll(b.events)
}

func (b *Backend) snapshotStores() []domain.Store {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneAll(b.stores)
}

func (b *Backend) snapshotProducts() []domain.Product {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneAll(b.products)
}

// cloneAll deep-copies items so callers never alias backend state.
func cloneAll[T interface{ Clone() T }](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
