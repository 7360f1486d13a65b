package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"givehope_backend/internal/catalog/domain"
	"givehope_backend/platform/apperr"
)

const (
	productNotFoundMessage = "product not found"
	charityNotFoundMessage = "charity not found"

	// AllCategories disables category filtering.
	AllCategories = "all"
)

// Repo serves the catalog from an in-memory dataset. It is immutable after
// construction and safe for concurrent use.
type Repo struct {
	categories []domain.Category
	products   []domain.Product
	charities  []domain.Charity
	byID       map[string]int
}

// New parses a catalog dataset.
func New(raw []byte) (*Repo, error) {
	var ds domain.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewFromDataset(ds)
}

// NewFromDataset builds a repository from an already decoded dataset.
func NewFromDataset(ds domain.Dataset) (*Repo, error) {
	byID := make(map[string]int, len(ds.Products))
	for i, p := range ds.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has no id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = i
	}
	return &Repo{
		categories: ds.Categories,
		products:   ds.Products,
		charities:  ds.Charities,
		byID:       byID,
	}, nil
}

// List returns every product in dataset order.
func (r *Repo) List(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

// GetByID returns the product with id.
func (r *Repo) GetByID(_ context.Context, id string) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, apperr.NotFound(productNotFoundMessage)
	}
	return r.products[i], nil
}

// ListByCategory returns the products in categoryID.
func (r *Repo) ListByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	return r.filter(func(p domain.Product) bool { return p.Category == categoryID }), nil
}

// Search matches query case-insensitively against name, description and tags.
func (r *Repo) Search(_ context.Context, query string) ([]domain.Product, error) {
	q := strings.ToLower(query)
	return r.filter(func(p domain.Product) bool { return matches(p, q) }), nil
}

// ListProducts applies params and returns one page plus the filtered total.
func (r *Repo) ListProducts(ctx context.Context, params ListProductsParams) ([]domain.Product, int, error) {
	var (
		items []domain.Product
		err   error
	)
	switch {
	case params.Search != "":
		items, err = r.Search(ctx, params.Search)
	case params.Category != "" && params.Category != AllCategories:
		items, err = r.ListByCategory(ctx, params.Category)
	default:
		items, err = r.List(ctx)
	}
	if err != nil {
		return nil, 0, err
	}

	total := len(items)
	start := min(max(params.Offset, 0), total)
	end := total
	if params.Limit > 0 {
		end = min(start+params.Limit, total)
	}
	return items[start:end], total, nil
}

// Categories returns the category list.
func (r *Repo) Categories(_ context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), r.categories...), nil
}

// Charities returns the charity list.
func (r *Repo) Charities(_ context.Context) ([]domain.Charity, error) {
	return append([]domain.Charity(nil), r.charities...), nil
}

// GetCharityByID returns the charity with id.
func (r *Repo) GetCharityByID(_ context.Context, id string) (domain.Charity, error) {
	for _, c := range r.charities {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Charity{}, apperr.NotFound(charityNotFoundMessage)
}

func (r *Repo) filter(keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

var _ Repository = (*Repo)(nil)
