package remote

import (
	"context"
	"net/url"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// EventsService calls the event listing endpoints.
type EventsService struct {
	client *Client
}

// List returns one page of events.
func (s *EventsService) List(ctx context.Context, page pagination.Params) (pagination.List[domain.Event], error) {
	q := url.Values{}
	page.Encode(q)
	return fetchList[domain.Event](ctx, s.client, "events", "/events", q)
}

// Featured returns the featured events.
func (s *EventsService) Featured(ctx context.Context) ([]domain.Event, error) {
	return fetchItems[domain.Event](ctx, s.client, "events", "/events/featured")
}

// Upcoming returns events that have not started, soonest first.
func (s *EventsService) Upcoming(ctx context.Context) ([]domain.Event, error) {
	return fetchItems[domain.Event](ctx, s.client, "events", "/events/upcoming")
}

// Trending returns the most attended events.
func (s *EventsService) Trending(ctx context.Context) ([]domain.Event, error) {
	return fetchItems[domain.Event](ctx, s.client, "events", "/events/trending")
}

// Search filters events by category and text.
func (s *EventsService) Search(ctx context.Context, q service.EventQuery) (pagination.List[domain.Event], error) {
	return fetchList[domain.Event](ctx, s.client, "events", "/events", q.Values())
}

func fetchList[T any](ctx context.Context, c *Client, svc, path string, q url.Values) (pagination.List[T], error) {
	var list pagination.List[T]
	if err := c.get(ctx, svc, path, q, "", &list); err != nil {
		return pagination.List[T]{}, err
	}
	if list.Items == nil {
		list.Items = []T{}
	}
	return list, nil
}

func fetchItems[T any](ctx context.Context, c *Client, svc, path string) ([]T, error) {
	list, err := fetchList[T](ctx, c, svc, path, nil)
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}
