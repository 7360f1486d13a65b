// Package auth provides the storefront account bounded context module.
package auth

import (
	"givehope_backend/internal/auth/handler"
	"givehope_backend/internal/auth/repository"
	"givehope_backend/internal/auth/service"
	apphttp "givehope_backend/internal/http"
	"givehope_backend/platform/config"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module. db is normally the
// pgx pool.
func NewModule(db repository.DBTX, val *validator.Validator, cfg config.AuthServiceConfig, log *logger.Logger) *Module {
	return NewModuleWithRepository(repository.New(db), val, cfg, log)
}

// NewModuleWithRepository wires the module over an existing repository.
func NewModuleWithRepository(repo repository.Repository, val *validator.Validator, cfg config.AuthServiceConfig, log *logger.Logger) *Module {
	svc := service.New(repo, cfg, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public auth routes with stricter rate limiting
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	ctx.Protected.GET("/auth/account", m.handler.Account)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
