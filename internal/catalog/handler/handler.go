package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"givehope_backend/internal/catalog/service"
	"givehope_backend/internal/catalog/transport"
	"givehope_backend/platform/httpkit"
	"givehope_backend/platform/validator"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the public catalog routes on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
	rg.GET("/categories", h.ListCategories)
	rg.GET("/charities", h.ListCharities)
	rg.GET("/charities/:id", h.GetCharity)
}

// ListProducts retrieves products.
// GET /api/v1/catalog/products
func (h *Handler) ListProducts(c *gin.Context) {
	var req transport.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.ListProducts(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetProduct retrieves a product by id.
// GET /api/v1/catalog/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	result, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListCategories retrieves categories.
// GET /api/v1/catalog/categories
func (h *Handler) ListCategories(c *gin.Context) {
	result, err := h.svc.ListCategories(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListCharities retrieves charities.
// GET /api/v1/catalog/charities
func (h *Handler) ListCharities(c *gin.Context) {
	result, err := h.svc.ListCharities(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetCharity retrieves a charity by id.
// GET /api/v1/catalog/charities/:id
func (h *Handler) GetCharity(c *gin.Context) {
	result, err := h.svc.GetCharity(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
