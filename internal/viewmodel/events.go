package viewmodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/observable"
	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// EventFilter is a quick filter chip on the events screen.
type EventFilter string

// Event filters.
const (
	FilterAll         EventFilter = "all"
	FilterToday       EventFilter = "today"
	FilterThisWeek    EventFilter = "this_week"
	FilterFree        EventFilter = "free"
	FilterGastronomic EventFilter = "gastronomic"
)

// EventFilters lists the filters in display order.
func EventFilters() []EventFilter {
	return []EventFilter{FilterAll, FilterToday, FilterThisWeek, FilterFree, FilterGastronomic}
}

// Matches reports whether e passes the filter at time now.
func (f EventFilter) Matches(e domain.Event, now time.Time) bool {
	switch f {
	case FilterToday:
		return e.IsToday(now)
	case FilterThisWeek:
		return e.IsThisWeek(now)
	case FilterFree:
		return e.IsFree()
	case FilterGastronomic:
		return e.Category == domain.EventCategoryGastronomic
	default:
		return true
	}
}

// EventsViewModel lists and searches events.
type EventsViewModel struct {
	*Loadable[pagination.List[domain.Event]]
	svc    service.EventsService
	filter *observable.Value[EventFilter]
	logger *slog.Logger
}

// NewEventsViewModel creates an idle events view model showing all events.
func NewEventsViewModel(svc service.EventsService, logger *slog.Logger) *EventsViewModel {
	return &EventsViewModel{
		Loadable: NewLoadable[pagination.List[domain.Event]](),
		svc:      svc,
		filter:   observable.New(FilterAll),
		logger:   logger,
	}
}

// LoadInitial fetches the first page of events.
func (vm *EventsViewModel) LoadInitial(ctx context.Context) error {
	return vm.load(ctx, "list", func(ctx context.Context) (pagination.List[domain.Event], error) {
		return vm.svc.List(ctx, pagination.DefaultParams())
	})
}

// Search replaces the collection with events matching category and query.
// An empty category or query matches everything.
func (vm *EventsViewModel) Search(ctx context.Context, category domain.EventCategory, query string) error {
	q := service.EventQuery{Category: category, Query: query, Page: pagination.DefaultParams()}
	return vm.load(ctx, "search", func(ctx context.Context) (pagination.List[domain.Event], error) {
		return vm.svc.Search(ctx, q)
	})
}

// SetFilter changes the quick filter. It never fetches.
func (vm *EventsViewModel) SetFilter(f EventFilter) {
	vm.filter.Set(f)
}

// Filter returns the active quick filter.
func (vm *EventsViewModel) Filter() EventFilter {
	return vm.filter.Get()
}

// Filtered projects the loaded events through the active filter. The
// stored collection is left untouched.
func (vm *EventsViewModel) Filtered(now time.Time) []domain.Event {
	f := vm.Filter()
	items := vm.State().Data.Items
	out := make([]domain.Event, 0, len(items))
	for _, e := range items {
		if f.Matches(e, now) {
			out = append(out, e)
		}
	}
	return out
}

func (vm *EventsViewModel) load(ctx context.Context, op string, fetch func(context.Context) (pagination.List[domain.Event], error)) error {
	err := vm.Run(ctx, fetch)
	if err != nil {
		logger.WithContext(ctx, vm.logger).WarnContext(ctx, "events load failed",
			slog.String("op", op), slog.String("code", apperrors.Code(err)))
	}
	return err
}
