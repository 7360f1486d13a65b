package service

import (
	"context"
	"strings"

	"givehope_backend/internal/catalog/domain"
	"givehope_backend/internal/catalog/repository"
	"givehope_backend/internal/catalog/transport"
	"givehope_backend/platform/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service provides read access to the storefront catalog.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// ListProducts retrieves products with search, category filter and pagination.
func (s *Service) ListProducts(ctx context.Context, req transport.ListProductsRequest) (transport.ProductListResponse, error) {
	page := req.Page
	pageSize := req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.repo.ListProducts(ctx, repository.ListProductsParams{
		Search:   strings.TrimSpace(req.Search),
		Category: strings.TrimSpace(req.Category),
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	})
	if err != nil {
		return transport.ProductListResponse{}, err
	}

	return transport.ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// GetProduct retrieves a product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// ListCategories retrieves all categories.
func (s *Service) ListCategories(ctx context.Context) (transport.CategoryListResponse, error) {
	items, err := s.repo.Categories(ctx)
	if err != nil {
		return transport.CategoryListResponse{}, err
	}
	return transport.CategoryListResponse{Items: items}, nil
}

// ListCharities retrieves all charities.
func (s *Service) ListCharities(ctx context.Context) (transport.CharityListResponse, error) {
	items, err := s.repo.Charities(ctx)
	if err != nil {
		return transport.CharityListResponse{}, err
	}
	return transport.CharityListResponse{Items: items}, nil
}

// GetCharity retrieves a charity by id.
func (s *Service) GetCharity(ctx context.Context, id string) (domain.Charity, error) {
	return s.repo.GetCharityByID(ctx, strings.TrimSpace(id))
}
