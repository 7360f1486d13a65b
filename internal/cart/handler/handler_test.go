package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"givehope_backend/internal/cart/session"
	"givehope_backend/internal/cart/storage"
	"givehope_backend/internal/cart/transport"
	catalog "givehope_backend/internal/catalog/domain"
	"givehope_backend/platform/apperr"
	"givehope_backend/platform/config"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/validator"
)

const testSession = "3f2b8c1e-8d4a-4a5e-9b61-0c7f2d9e4a10"

type fakeCatalog map[string]catalog.Product

func (f fakeCatalog) GetProduct(_ context.Context, id string) (catalog.Product, error) {
	if p, ok := f[id]; ok {
		return p, nil
	}
	return catalog.Product{}, apperr.NotFound("product not found")
}

func newTestRouter(t *testing.T) (*gin.Engine, storage.Backend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := storage.NewMemory()
	sessions := session.New(backend, time.Minute, logger.Discard())
	products := fakeCatalog{
		"bear":   {ID: "bear", Name: "Bear", Price: 800, OriginalPrice: 1000, CharityPercent: 25},
		"book":   {ID: "book", Name: "Book", Price: 500, OriginalPrice: 500, CharityPercent: 10},
		"candle": {ID: "candle", Name: "Candle", Price: 300, CharityPercent: 50},
	}
	cfg := &config.Config{CartTTL: time.Hour}

	engine := gin.New()
	New(sessions, products, validator.New(), cfg).RegisterRoutes(engine.Group("/api/v1/cart"))
	return engine, backend
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(SessionHeader, testSession)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) transport.CartResponse {
	t.Helper()
	var resp transport.CartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestGetCartStartsEmpty(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := do(t, engine, http.MethodGet, "/api/v1/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", w.Body.String())
	}
	if got := w.Header().Get(SessionHeader); got != testSession {
		t.Fatalf("expected session echoed, got %q", got)
	}
}

func TestAddItemFlow(t *testing.T) {
	engine, _ := newTestRouter(t)

	do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"bear"}`)
	do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"book"}`)
	w := do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"bear"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeCart(t, w)
	if len(resp.Items) != 2 || resp.Items[0].ID != "bear" || resp.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", resp.Items)
	}
	if resp.Total != 2100 || resp.ItemCount != 3 {
		t.Fatalf("expected total 2100 count 3, got %v %d", resp.Total, resp.ItemCount)
	}
	if resp.Summary.CharityTotal != 450 || resp.Summary.Savings != 400 {
		t.Fatalf("unexpected summary %+v", resp.Summary)
	}
}

func TestAddUnknownProductIsNotFound(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"ghost"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAddItemValidation(t *testing.T) {
	engine, _ := newTestRouter(t)

	if w := do(t, engine, http.MethodPost, "/api/v1/cart/items", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing productId, got %d", w.Code)
	}
	if w := do(t, engine, http.MethodPost, "/api/v1/cart/items", `{bad`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestQuantityRoutes(t *testing.T) {
	engine, _ := newTestRouter(t)
	do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"candle"}`)

	resp := decodeCart(t, do(t, engine, http.MethodPut, "/api/v1/cart/items/candle", `{"quantity":4}`))
	if resp.ItemCount != 4 || resp.Total != 1200 {
		t.Fatalf("after update: %+v", resp)
	}

	resp = decodeCart(t, do(t, engine, http.MethodPost, "/api/v1/cart/items/candle/increase", ""))
	if resp.ItemCount != 5 {
		t.Fatalf("after increase: %+v", resp)
	}

	resp = decodeCart(t, do(t, engine, http.MethodPost, "/api/v1/cart/items/candle/decrease", ""))
	if resp.ItemCount != 4 {
		t.Fatalf("after decrease: %+v", resp)
	}

	resp = decodeCart(t, do(t, engine, http.MethodDelete, "/api/v1/cart/items/candle", ""))
	if len(resp.Items) != 0 || resp.Total != 0 {
		t.Fatalf("after remove: %+v", resp)
	}
}

func TestUpdateQuantityRequiresValue(t *testing.T) {
	engine, _ := newTestRouter(t)

	if w := do(t, engine, http.MethodPut, "/api/v1/cart/items/candle", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestClearAndLoadCart(t *testing.T) {
	engine, _ := newTestRouter(t)
	do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"bear"}`)

	resp := decodeCart(t, do(t, engine, http.MethodDelete, "/api/v1/cart", ""))
	if len(resp.Items) != 0 || resp.ItemCount != 0 {
		t.Fatalf("after clear: %+v", resp)
	}

	snapshot := `{"items":[{"id":"x","name":"X","price":10,"quantity":3}],"total":30,"itemCount":3}`
	resp = decodeCart(t, do(t, engine, http.MethodPut, "/api/v1/cart", snapshot))
	if resp.Total != 30 || resp.ItemCount != 3 || resp.Items[0].ID != "x" {
		t.Fatalf("after load: %+v", resp)
	}
}

func TestCartPersistsUnderSessionScope(t *testing.T) {
	engine, backend := newTestRouter(t)
	do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"book"}`)

	raw, found, err := backend.Get(context.Background(), "session:"+testSession+":cart")
	if err != nil || !found {
		t.Fatalf("expected persisted cart, found=%v err=%v", found, err)
	}
	if !strings.Contains(raw, `"id":"book"`) || !strings.Contains(raw, `"itemCount":1`) {
		t.Fatalf("unexpected persisted value %s", raw)
	}
}

func TestSessionIssuedWhenMissing(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(SessionHeader, "not-a-uuid")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	issued := w.Header().Get(SessionHeader)
	if issued == "" || issued == "not-a-uuid" {
		t.Fatalf("expected a fresh session id, got %q", issued)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), SessionCookie+"="+issued) {
		t.Fatalf("expected session cookie, got %q", w.Header().Get("Set-Cookie"))
	}
}

func TestSessionFromCookie(t *testing.T) {
	engine, _ := newTestRouter(t)
	do(t, engine, http.MethodPost, "/api/v1/cart/items", `{"productId":"bear"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: testSession})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if resp := decodeCart(t, w); resp.ItemCount != 1 {
		t.Fatalf("expected cookie session's cart, got %+v", resp)
	}
}
