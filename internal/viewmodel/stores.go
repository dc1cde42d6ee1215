package viewmodel

import (
	"context"
	"log/slog"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/observable"
	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// StoresViewModel lists and searches stores.
type StoresViewModel struct {
	*Loadable[pagination.List[domain.Store]]
	svc      service.StoresService
	category *observable.Value[domain.StoreCategory]
	logger   *slog.Logger
}

// NewStoresViewModel creates an idle stores view model.
func NewStoresViewModel(svc service.StoresService, logger *slog.Logger) *StoresViewModel {
	return &StoresViewModel{
		Loadable: NewLoadable[pagination.List[domain.Store]](),
		svc:      svc,
		category: observable.New(domain.StoreCategory("")),
		logger:   logger,
	}
}

// LoadInitial fetches the first page of stores.
func (vm *StoresViewModel) LoadInitial(ctx context.Context) error {
	return vm.run(ctx, func(ctx context.Context) (pagination.List[domain.Store], error) {
		return vm.svc.List(ctx, pagination.DefaultParams())
	})
}

// Search replaces the collection with stores matching category and query.
func (vm *StoresViewModel) Search(ctx context.Context, category domain.StoreCategory, query string) error {
	q := service.StoreQuery{Category: category, Query: query, Page: pagination.DefaultParams()}
	return vm.run(ctx, func(ctx context.Context) (pagination.List[domain.Store], error) {
		return vm.svc.Search(ctx, q)
	})
}

// SetCategory selects the category chip; empty shows everything.
func (vm *StoresViewModel) SetCategory(c domain.StoreCategory) {
	vm.category.Set(c)
}

// Filtered projects the loaded stores through the selected category.
func (vm *StoresViewModel) Filtered() []domain.Store {
	c := vm.category.Get()
	items := vm.State().Data.Items
	out := make([]domain.Store, 0, len(items))
	for _, s := range items {
		if c == "" || s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// OpenNow projects the loaded stores that report being open.
func (vm *StoresViewModel) OpenNow() []domain.Store {
	var out []domain.Store
	for _, s := range vm.State().Data.Items {
		if s.OpenNow() {
			out = append(out, s)
		}
	}
	return out
}

func (vm *StoresViewModel) run(ctx context.Context, fetch func(context.Context) (pagination.List[domain.Store], error)) error {
	err := vm.Run(ctx, fetch)
	if err != nil {
		logger.WithContext(ctx, vm.logger).WarnContext(ctx, "stores load failed", slog.String("code", apperrors.Code(err)))
	}
	return err
}
