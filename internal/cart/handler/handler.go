package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"givehope_backend/internal/cart/domain"
	"givehope_backend/internal/cart/session"
	"givehope_backend/internal/cart/transport"
	catalog "givehope_backend/internal/catalog/domain"
	"givehope_backend/platform/config"
	"givehope_backend/platform/httpkit"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/validator"
)

const (
	// SessionHeader carries the cart session id.
	SessionHeader = "X-Cart-Session"
	// SessionCookie is the cookie fallback for SessionHeader.
	SessionCookie = "cart_session"

	contextSessionKey = "cartSession"

	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidProductID = "invalid product id"
)

// ProductLookup resolves catalog products for AddItem.
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
}

// Handler handles HTTP requests for the cart.
type Handler struct {
	sessions *session.Registry
	products ProductLookup
	val      *validator.Validator
	cfg      config.CartConfig
}

// New creates a new cart handler.
func New(sessions *session.Registry, products ProductLookup, val *validator.Validator, cfg config.CartConfig) *Handler {
	return &Handler{sessions: sessions, products: products, val: val, cfg: cfg}
}

// RegisterRoutes mounts the cart routes on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(h.Session())
	rg.GET("", h.GetCart)
	rg.PUT("", h.LoadCart)
	rg.DELETE("", h.ClearCart)
	rg.POST("/items", h.AddItem)
	rg.PUT("/items/:productId", h.UpdateQuantity)
	rg.DELETE("/items/:productId", h.RemoveItem)
	rg.POST("/items/:productId/increase", h.IncreaseQuantity)
	rg.POST("/items/:productId/decrease", h.DecreaseQuantity)
}

// Session resolves the cart session id from the header, then the cookie,
// and issues a fresh one when neither holds a valid id. The id is echoed
// back in both places.
func (h *Handler) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionFromRequest(c)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextSessionKey, id)
		c.Header(SessionHeader, id)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, int(h.cfg.GetCartTTL().Seconds()), "/", "", h.cfg.GetCartCookieSecure(), true)

		ctx := context.WithValue(c.Request.Context(), logger.CartSessionKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func sessionFromRequest(c *gin.Context) string {
	if id, ok := parseSessionID(c.GetHeader(SessionHeader)); ok {
		return id
	}
	if raw, err := c.Cookie(SessionCookie); err == nil {
		if id, ok := parseSessionID(raw); ok {
			return id
		}
	}
	return ""
}

// Session ids become storage keys, so only canonical uuids are accepted.
func parseSessionID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// GetCart returns the session's cart.
// GET /api/v1/cart
func (h *Handler) GetCart(c *gin.Context) {
	state := h.sessions.Store(c.Request.Context(), c.GetString(contextSessionKey)).State()
	httpkit.OK(c, transport.NewCartResponse(state))
}

// AddItem adds one unit of a catalog product.
// POST /api/v1/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req transport.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	ctx := c.Request.Context()
	product, err := h.products.GetProduct(ctx, strings.TrimSpace(req.ProductID))
	if httpkit.HandleError(c, err) {
		return
	}

	h.dispatch(c, func(s *domain.Store) domain.State {
		return s.AddItem(ctx, product)
	})
}

// RemoveItem drops a line.
// DELETE /api/v1/cart/items/:productId
func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	h.dispatch(c, func(s *domain.Store) domain.State {
		return s.RemoveItem(ctx, id)
	})
}

// UpdateQuantity sets a line's quantity.
// PUT /api/v1/cart/items/:productId
func (h *Handler) UpdateQuantity(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	var req transport.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	ctx := c.Request.Context()
	h.dispatch(c, func(s *domain.Store) domain.State {
		return s.UpdateQuantity(ctx, id, *req.Quantity)
	})
}

// IncreaseQuantity adds one unit to a line.
// POST /api/v1/cart/items/:productId/increase
func (h *Handler) IncreaseQuantity(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	h.dispatch(c, func(s *domain.Store) domain.State {
		return s.IncreaseQuantity(ctx, id)
	})
}

// DecreaseQuantity removes one unit from a line, dropping it at zero.
// POST /api/v1/cart/items/:productId/decrease
func (h *Handler) DecreaseQuantity(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	h.dispatch(c, func(s *domain.Store) domain.State {
		return s.DecreaseQuantity(ctx, id)
	})
}

// ClearCart empties the cart.
// DELETE /api/v1/cart
func (h *Handler) ClearCart(c *gin.Context) {
	ctx := c.Request.Context()
	h.dispatch(c, func(s *domain.Store) domain.State {
		return s.ClearCart(ctx)
	})
}

// LoadCart replaces the cart with a client-held snapshot.
// PUT /api/v1/cart
func (h *Handler) LoadCart(c *gin.Context) {
	var req transport.LoadCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	ctx := c.Request.Context()
	h.dispatch(c, func(s *domain.Store) domain.State {
		return s.Load(ctx, req.State())
	})
}

func (h *Handler) dispatch(c *gin.Context, fn func(*domain.Store) domain.State) {
	state, err := h.sessions.With(c.Request.Context(), c.GetString(contextSessionKey), func(s *domain.Store) (domain.State, error) {
		return fn(s), nil
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NewCartResponse(state))
}

func productIDParam(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("productId"))
	if id == "" {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidProductID, nil)
		return "", false
	}
	return id, true
}
