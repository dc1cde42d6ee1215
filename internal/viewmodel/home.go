package viewmodel

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/tracing"
)

// HomeData is the home screen: featured events, stores and products.
type HomeData struct {
	Events   []domain.Event
	Stores   []domain.Store
	Products []domain.Product
}

// HomeViewModel loads the home screen sections together.
type HomeViewModel struct {
	*Loadable[HomeData]
	events   service.EventsService
	stores   service.StoresService
	products service.ProductsService
	logger   *slog.Logger
}

// NewHomeViewModel creates an idle home view model.
func NewHomeViewModel(events service.EventsService, stores service.StoresService, products service.ProductsService, logger *slog.Logger) *HomeViewModel {
	return &HomeViewModel{
		Loadable: NewLoadable[HomeData](),
		events:   events,
		stores:   stores,
		products: products,
		logger:   logger,
	}
}

// LoadInitial fetches the three sections concurrently and applies them only
// if all succeed. On any failure none of this load's results are kept.
func (vm *HomeViewModel) LoadInitial(ctx context.Context) error {
	ctx, span := tracing.Tracer("viewmodel").Start(ctx, "home.load")
	defer span.End()

	log := logger.WithContext(ctx, vm.logger)
	log.DebugContext(ctx, "home load started")

	err := vm.Run(ctx, vm.fetch)
	if err != nil {
		span.RecordError(err)
		log.WarnContext(ctx, "home load failed", slog.String("code", apperrors.Code(err)), slog.String("error", err.Error()))
		return err
	}
	log.DebugContext(ctx, "home load finished")
	return nil
}

// Refresh reloads every section.
func (vm *HomeViewModel) Refresh(ctx context.Context) error {
	return vm.LoadInitial(ctx)
}

func (vm *HomeViewModel) fetch(ctx context.Context) (HomeData, error) {
	var data HomeData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := vm.events.Featured(gctx)
		data.Events = events
		return err
	})
	g.Go(func() error {
		stores, err := vm.stores.Featured(gctx)
		data.Stores = stores
		return err
	})
	g.Go(func() error {
		products, err := vm.products.Featured(gctx)
		data.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return HomeData{}, err
	}
	return data, nil
}
