// Package service declares the backend operations the storefront consumes.
// Implementations return classified errors from pkg/errors and never touch
// the session; callers decide what to do with an auth result.
package service

import (
	"context"

	"github.com/doulovera/proyx-app/internal/domain"
	"github.com/doulovera/proyx-app/pkg/pagination"
)

// AuthService signs users in and up.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
}

// ProfileService reads and updates the signed-in user's profile.
type ProfileService interface {
	Profile(ctx context.Context, token string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, req domain.UpdateProfileRequest) (*domain.UserProfile, error)
}

// EventsService lists events.
type EventsService interface {
	List(ctx context.Context, page pagination.Params) (pagination.List[domain.Event], error)
	Featured(ctx context.Context) ([]domain.Event, error)
	Upcoming(ctx context.Context) ([]domain.Event, error)
	Trending(ctx context.Context) ([]domain.Event, error)
	Search(ctx context.Context, q EventQuery) (pagination.List[domain.Event], error)
}

// StoresService lists stores.
type StoresService interface {
	List(ctx context.Context, page pagination.Params) (pagination.List[domain.Store], error)
	Featured(ctx context.Context) ([]domain.Store, error)
	Search(ctx context.Context, q StoreQuery) (pagination.List[domain.Store], error)
}

// ProductsService lists products.
type ProductsService interface {
	List(ctx context.Context, page pagination.Params) (pagination.List[domain.Product], error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Trending(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, q ProductQuery) (pagination.List[domain.Product], error)
}

// PurchaseService buys event tickets for the token's user.
type PurchaseService interface {
	PurchaseTickets(ctx context.Context, token string, req domain.TicketPurchaseRequest) (*domain.PurchaseResult, error)
}

// Services bundles one implementation of every service.
type Services struct {
	Auth     AuthService
	Profile  ProfileService
	Events   EventsService
	Stores   StoresService
	Products ProductsService
	Purchase PurchaseService
}
