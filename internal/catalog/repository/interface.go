package repository

import (
	"context"

	"givehope_backend/internal/catalog/domain"
)

// ListProductsParams defines filters for listing products. Search takes
// precedence over Category.
type ListProductsParams struct {
	Search   string
	Category string
	Offset   int
	Limit    int
}

// Repository is the read-only catalog store.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]domain.Product, int, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Charities(ctx context.Context) ([]domain.Charity, error)
	GetCharityByID(ctx context.Context, id string) (domain.Charity, error)
}
