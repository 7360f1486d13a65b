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
	"github.com/google/uuid"

	"givehope_backend/internal/auth/repository"
	"givehope_backend/internal/auth/service"
	"givehope_backend/internal/auth/transport"
	"givehope_backend/platform/config"
	"givehope_backend/platform/httpkit"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/validator"
)

type stubRepo struct {
	users map[uuid.UUID]repository.User
}

func (s *stubRepo) CreateUser(_ context.Context, p repository.CreateUserParams) (repository.User, error) {
	u := repository.User{ID: uuid.New(), Email: p.Email, Username: p.Username, Phone: p.Phone, PasswordHash: p.PasswordHash, CreatedAt: time.Now()}
	s.users[u.ID] = u
	return u, nil
}

func (s *stubRepo) GetUserByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return repository.User{}, repository.ErrNotFound
}

func (s *stubRepo) GetUserByIdentifier(_ context.Context, identifier string) (repository.User, error) {
	for _, u := range s.users {
		if u.Email == identifier || u.Username == identifier {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

func (s *stubRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTAccessSecret: "test-secret", AccessTokenTTL: time.Hour}
	h := New(service.New(&stubRepo{users: map[uuid.UUID]repository.User{}}, cfg, logger.Discard()), validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1/auth"))
	engine.GET("/api/v1/auth/account", httpkit.AuthRequired(cfg), h.Account)
	return engine
}

func send(engine *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

const annaJSON = `{"email":"anna@example.org","username":"anna","phone":"+79123456789","password":"pw123456"}`

func TestRegisterLoginAccount(t *testing.T) {
	engine := newEngine(t)

	w := send(engine, http.MethodPost, "/api/v1/auth/register", annaJSON, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var reg transport.RegisterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil || !reg.Success || reg.User.Username != "anna" {
		t.Fatalf("unexpected register response %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatal("register response must not leak the password hash")
	}

	w = send(engine, http.MethodPost, "/api/v1/auth/login", `{"identifier":"anna","password":"pw123456"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var login transport.LoginResponse
	_ = json.Unmarshal(w.Body.Bytes(), &login)
	if login.UserID != reg.User.ID || login.AccessToken == "" {
		t.Fatalf("unexpected login response %+v", login)
	}

	w = send(engine, http.MethodGet, "/api/v1/auth/account", "", login.AccessToken)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"email":"anna@example.org"`) {
		t.Fatalf("unexpected account response %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterDuplicateIsBadRequest(t *testing.T) {
	engine := newEngine(t)
	send(engine, http.MethodPost, "/api/v1/auth/register", annaJSON, "")

	if w := send(engine, http.MethodPost, "/api/v1/auth/register", annaJSON, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	engine := newEngine(t)

	bodies := []string{
		`{"email":"not-an-email","username":"a1","phone":"1","password":"x"}`,
		`{"email":"a@b.co","username":"a1","phone":"1"}`,
		`{"email":"a@b.co"`,
	}
	for _, body := range bodies {
		if w := send(engine, http.MethodPost, "/api/v1/auth/register", body, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, w.Code)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	engine := newEngine(t)
	send(engine, http.MethodPost, "/api/v1/auth/register", annaJSON, "")

	if w := send(engine, http.MethodPost, "/api/v1/auth/login", `{"identifier":"anna","password":"nope"}`, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAccountRequiresToken(t *testing.T) {
	if w := send(newEngine(t), http.MethodGet, "/api/v1/auth/account", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
