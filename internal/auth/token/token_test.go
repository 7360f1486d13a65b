package token

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"givehope_backend/platform/config"
	"givehope_backend/platform/httpkit"
)

func protectedEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/me", httpkit.AuthRequired(&config.Config{JWTAccessSecret: secret}), func(c *gin.Context) {
		c.String(http.StatusOK, httpkit.GetIdentity(c).UserID().String())
	})
	return engine
}

func request(engine *gin.Engine, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSignAccessIsAcceptedByMiddleware(t *testing.T) {
	userID := uuid.New()
	tok, err := SignAccess(userID, "secret", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := request(protectedEngine("secret"), tok)
	if w.Code != http.StatusOK || w.Body.String() != userID.String() {
		t.Fatalf("expected 200 with user id, got %d %q", w.Code, w.Body.String())
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	tok, _ := SignAccess(uuid.New(), "secret", time.Minute, time.Now().Add(-time.Hour))

	if w := request(protectedEngine("secret"), tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestWrongSecretIsRejected(t *testing.T) {
	tok, _ := SignAccess(uuid.New(), "secret", time.Hour, time.Now())

	if w := request(protectedEngine("other"), tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
