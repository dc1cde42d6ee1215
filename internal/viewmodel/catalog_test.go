package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/logger"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

func boolPtr(b bool) *bool { return &b }

func TestStores_LoadFilterAndOpenNow(t *testing.T) {
	svc := new(mockStores)
	stores := []domain.Store{
		{ID: "s1", Category: domain.StoreCategoryCafe, IsOpen: boolPtr(true)},
		{ID: "s2", Category: domain.StoreCategoryBakery, IsOpen: boolPtr(false)},
		{ID: "s3", Category: domain.StoreCategoryCafe},
	}
	svc.On("List", mock.Anything, pagination.DefaultParams()).Return(pagination.NewList(stores, 3, pagination.DefaultParams()), nil)

	vm := NewStoresViewModel(svc, logger.Discard())
	require.NoError(t, vm.LoadInitial(context.Background()))

	assert.Len(t, vm.Filtered(), 3)

	vm.SetCategory(domain.StoreCategoryCafe)
	filtered := vm.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "s1", filtered[0].ID)
	assert.Equal(t, "s3", filtered[1].ID)

	open := vm.OpenNow()
	require.Len(t, open, 1)
	assert.Equal(t, "s1", open[0].ID)

	svc.AssertNumberOfCalls(t, "List", 1)
}

func TestStores_Search(t *testing.T) {
	svc := new(mockStores)
	q := service.StoreQuery{Category: domain.StoreCategoryBar, Query: "azotea", Page: pagination.DefaultParams()}
	svc.On("Search", mock.Anything, q).Return(pagination.NewList([]domain.Store{{ID: "bar"}}, 1, pagination.DefaultParams()), nil)

	vm := NewStoresViewModel(svc, logger.Discard())
	require.NoError(t, vm.Search(context.Background(), domain.StoreCategoryBar, "azotea"))
	assert.Equal(t, "bar", vm.State().Data.Items[0].ID)
}

func TestStores_Failure(t *testing.T) {
	svc := new(mockStores)
	svc.On("List", mock.Anything, mock.Anything).Return(pagination.List[domain.Store]{}, apperrors.Network(nil))

	vm := NewStoresViewModel(svc, logger.Discard())
	require.Error(t, vm.LoadInitial(context.Background()))
	assert.Equal(t, PhaseFailed, vm.State().Phase)
	assert.Empty(t, vm.Filtered())
}

func productsFixture() ([]domain.Product, []domain.Product, []domain.Product) {
	all := []domain.Product{
		{ID: "p1", Category: domain.ProductCategoryBakery},
		{ID: "p2", Category: domain.ProductCategoryDrinks},
	}
	return all, []domain.Product{all[0]}, []domain.Product{all[1]}
}

func TestProducts_LoadInitialFillsSections(t *testing.T) {
	svc := new(mockProducts)
	all, featured, trending := productsFixture()
	svc.On("List", mock.Anything, pagination.DefaultParams()).Return(pagination.NewList(all, 2, pagination.DefaultParams()), nil)
	svc.On("Featured", mock.Anything).Return(featured, nil)
	svc.On("Trending", mock.Anything).Return(trending, nil)

	vm := NewProductsViewModel(svc, logger.Discard())
	require.NoError(t, vm.LoadInitial(context.Background()))

	assert.Equal(t, all, vm.State().Data.Items)
	assert.Equal(t, ProductHighlights{Featured: featured, Trending: trending}, vm.Highlights.State().Data)
	assert.Equal(t, PhaseLoaded, vm.Highlights.State().Phase)

	vm.SetCategory(domain.ProductCategoryDrinks)
	filtered := vm.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "p2", filtered[0].ID)
}

func TestProducts_HighlightsAreAllOrNothing(t *testing.T) {
	svc := new(mockProducts)
	all, featured, _ := productsFixture()
	svc.On("List", mock.Anything, mock.Anything).Return(pagination.NewList(all, 2, pagination.DefaultParams()), nil)
	svc.On("Featured", mock.Anything).Return(featured, nil)
	svc.On("Trending", mock.Anything).Return(nil, apperrors.Decoding(nil))

	vm := NewProductsViewModel(svc, logger.Discard())
	require.ErrorIs(t, vm.LoadInitial(context.Background()), apperrors.ErrDecoding)

	hl := vm.Highlights.State()
	assert.Equal(t, PhaseFailed, hl.Phase)
	assert.False(t, hl.HasData)
	assert.Empty(t, hl.Data.Featured)
	assert.Equal(t, PhaseLoaded, vm.State().Phase)
	assert.Equal(t, all, vm.State().Data.Items)
}

func TestProducts_SearchReplacesListOnly(t *testing.T) {
	svc := new(mockProducts)
	all, featured, trending := productsFixture()
	svc.On("List", mock.Anything, mock.Anything).Return(pagination.NewList(all, 2, pagination.DefaultParams()), nil)
	svc.On("Featured", mock.Anything).Return(featured, nil)
	svc.On("Trending", mock.Anything).Return(trending, nil)

	q := service.ProductQuery{Query: "pan", Page: pagination.DefaultParams()}
	found := pagination.NewList(all[:1], 1, pagination.DefaultParams())
	svc.On("Search", mock.Anything, q).Return(found, nil)

	vm := NewProductsViewModel(svc, logger.Discard())
	require.NoError(t, vm.LoadInitial(context.Background()))
	highlights := vm.Highlights.State()

	require.NoError(t, vm.Search(context.Background(), "", "pan"))

	assert.Equal(t, found, vm.State().Data)
	assert.Equal(t, highlights, vm.Highlights.State())
	svc.AssertNumberOfCalls(t, "Featured", 1)
	svc.AssertNumberOfCalls(t, "Trending", 1)
}

func TestProducts_ReloadReplacesHighlights(t *testing.T) {
	svc := new(mockProducts)
	all, featured, trending := productsFixture()
	svc.On("List", mock.Anything, mock.Anything).Return(pagination.NewList(all, 2, pagination.DefaultParams()), nil)
	svc.On("Featured", mock.Anything).Return(featured, nil).Once()
	svc.On("Featured", mock.Anything).Return([]domain.Product{}, nil)
	svc.On("Trending", mock.Anything).Return(trending, nil)

	vm := NewProductsViewModel(svc, logger.Discard())
	require.NoError(t, vm.LoadInitial(context.Background()))
	require.NoError(t, vm.LoadInitial(context.Background()))

	assert.Equal(t, ProductHighlights{Featured: []domain.Product{}, Trending: trending}, vm.Highlights.State().Data)
}
