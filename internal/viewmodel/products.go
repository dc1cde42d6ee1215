package viewmodel

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/observable"
	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// ProductHighlights are the featured and trending rows of the products
// screen.
type ProductHighlights struct {
	Featured []domain.Product
	Trending []domain.Product
}

// ProductsViewModel lists and searches products. The browsable list and the
// highlight rows load independently; each replaces its own data wholesale.
type ProductsViewModel struct {
	*Loadable[pagination.List[domain.Product]]
	Highlights *Loadable[ProductHighlights]
	svc        service.ProductsService
	category   *observable.Value[domain.ProductCategory]
	logger     *slog.Logger
}

// NewProductsViewModel creates an idle products view model.
func NewProductsViewModel(svc service.ProductsService, logger *slog.Logger) *ProductsViewModel {
	return &ProductsViewModel{
		Loadable:   NewLoadable[pagination.List[domain.Product]](),
		Highlights: NewLoadable[ProductHighlights](),
		svc:        svc,
		category:   observable.New(domain.ProductCategory("")),
		logger:     logger,
	}
}

// LoadInitial loads the first page and the highlight rows concurrently and
// returns the first error. The two rows are joined all or nothing.
func (vm *ProductsViewModel) LoadInitial(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return vm.loadList(ctx, "load", func(ctx context.Context) (pagination.List[domain.Product], error) {
			return vm.svc.List(ctx, pagination.DefaultParams())
		})
	})
	g.Go(func() error {
		return vm.loadHighlights(ctx)
	})
	return g.Wait()
}

// Search replaces the browsable list. The highlight rows are not touched.
func (vm *ProductsViewModel) Search(ctx context.Context, category domain.ProductCategory, query string) error {
	q := service.ProductQuery{Category: category, Query: query, Page: pagination.DefaultParams()}
	return vm.loadList(ctx, "search", func(ctx context.Context) (pagination.List[domain.Product], error) {
		return vm.svc.Search(ctx, q)
	})
}

// SetCategory selects the category chip; empty shows everything.
func (vm *ProductsViewModel) SetCategory(c domain.ProductCategory) {
	vm.category.Set(c)
}

// Filtered projects the browsable list through the selected category.
func (vm *ProductsViewModel) Filtered() []domain.Product {
	c := vm.category.Get()
	items := vm.State().Data.Items
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if c == "" || p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func (vm *ProductsViewModel) loadHighlights(ctx context.Context) error {
	err := vm.Highlights.Run(ctx, func(ctx context.Context) (ProductHighlights, error) {
		var h ProductHighlights
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			featured, err := vm.svc.Featured(gctx)
			h.Featured = featured
			return err
		})
		g.Go(func() error {
			trending, err := vm.svc.Trending(gctx)
			h.Trending = trending
			return err
		})
		if err := g.Wait(); err != nil {
			return ProductHighlights{}, err
		}
		return h, nil
	})
	vm.logFailure(ctx, "highlights", err)
	return err
}

func (vm *ProductsViewModel) loadList(ctx context.Context, op string, fetch func(context.Context) (pagination.List[domain.Product], error)) error {
	err := vm.Run(ctx, fetch)
	vm.logFailure(ctx, op, err)
	return err
}

func (vm *ProductsViewModel) logFailure(ctx context.Context, op string, err error) {
	if err != nil {
		logger.WithContext(ctx, vm.logger).WarnContext(ctx, "products load failed",
			slog.String("op", op), slog.String("code", apperrors.Code(err)))
	}
}
