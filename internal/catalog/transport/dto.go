package transport

import "givehope_backend/internal/catalog/domain"

type ListProductsRequest struct {
	Search   string `form:"search" validate:"max=100"`
	Category string `form:"category" validate:"max=50"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

type ProductListResponse struct {
	Items      []domain.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

type CategoryListResponse struct {
	Items []domain.Category `json:"items"`
}

type CharityListResponse struct {
	Items []domain.Charity `json:"items"`
}
