// Package cart provides the cart bounded context module.
package cart

import (
	"givehope_backend/internal/cart/handler"
	"givehope_backend/internal/cart/session"
	"givehope_backend/internal/cart/storage"
	apphttp "givehope_backend/internal/http"
	"givehope_backend/platform/config"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/validator"
)

// Module is the cart bounded context module implementing http.Module.
type Module struct {
	handler  *handler.Handler
	sessions *session.Registry
}

// NewModule creates the cart module. Carts persist to backend, one namespace
// per session.
func NewModule(backend storage.Backend, products handler.ProductLookup, val *validator.Validator, cfg config.CartConfig, log *logger.Logger) *Module {
	sessions := session.New(backend, cfg.GetCartSessionIdle(), log)
	h := handler.New(sessions, products, val, cfg)

	return &Module{
		handler:  h,
		sessions: sessions,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "cart"
}

// Sessions returns the session registry so main can run its sweeper.
func (m *Module) Sessions() *session.Registry {
	return m.sessions
}

// RegisterRoutes mounts cart routes on the provided router context.
// Carts are anonymous; no auth middleware applies.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/cart"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
