// Package catalog provides the catalog bounded context module.
package catalog

import (
	"fmt"

	"givehope_backend/internal/catalog/data"
	"givehope_backend/internal/catalog/handler"
	"givehope_backend/internal/catalog/repository"
	"givehope_backend/internal/catalog/service"
	apphttp "givehope_backend/internal/http"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the catalog module from the embedded dataset.
func NewModule(val *validator.Validator, log *logger.Logger) (*Module, error) {
	repo, err := repository.New(data.ProductJSON)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	svc := service.New(repo, log)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for use by other modules (cart lookups).
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
// The storefront catalog is public.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/catalog"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
