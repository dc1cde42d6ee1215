package viewmodel

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/internal/service"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// ============================================================================
// Mock Services
// ============================================================================

type mockEvents struct {
	mock.Mock
}

func (m *mockEvents) List(ctx context.Context, page pagination.Params) (pagination.List[domain.Event], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.List[domain.Event]), args.Error(1)
}

func (m *mockEvents) Featured(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEvents) Upcoming(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEvents) Trending(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEvents) Search(ctx context.Context, q service.EventQuery) (pagination.List[domain.Event], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.List[domain.Event]), args.Error(1)
}

type mockStores struct {
	mock.Mock
}

func (m *mockStores) List(ctx context.Context, page pagination.Params) (pagination.List[domain.Store], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.List[domain.Store]), args.Error(1)
}

func (m *mockStores) Featured(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *mockStores) Search(ctx context.Context, q service.StoreQuery) (pagination.List[domain.Store], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.List[domain.Store]), args.Error(1)
}

type mockProducts struct {
	mock.Mock
}

func (m *mockProducts) List(ctx context.Context, page pagination.Params) (pagination.List[domain.Product], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.List[domain.Product]), args.Error(1)
}

func (m *mockProducts) Featured(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProducts) Trending(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProducts) Search(ctx context.Context, q service.ProductQuery) (pagination.List[domain.Product], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.List[domain.Product]), args.Error(1)
}

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResponse), args.Error(1)
}

func (m *mockAuth) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResponse), args.Error(1)
}

type mockProfile struct {
	mock.Mock
}

func (m *mockProfile) Profile(ctx context.Context, token string) (*domain.UserProfile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockProfile) UpdateProfile(ctx context.Context, token string, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

type mockPurchase struct {
	mock.Mock
}

func (m *mockPurchase) PurchaseTickets(ctx context.Context, token string, req domain.TicketPurchaseRequest) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}
