package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"givehope_backend/internal/auth/password"
	"givehope_backend/internal/auth/repository"
	"givehope_backend/internal/auth/token"
	"givehope_backend/internal/auth/transport"
	"givehope_backend/platform/apperr"
	"givehope_backend/platform/config"
	"givehope_backend/platform/logger"
	"givehope_backend/platform/phone"
)

const (
	msgUserExists         = "user with this email or username already exists"
	msgInvalidCredentials = "invalid credentials"
	msgUserNotFound       = "user not found"
)

// Service handles storefront account registration and sign-in.
type Service struct {
	repo repository.Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
	now  func() time.Time
}

// New creates a new auth service.
func New(repo repository.Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{repo: repo, cfg: cfg, log: log, now: time.Now}
}

// Register creates an account. A taken email or username is a bad request.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (transport.UserResponse, error) {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)
	log := s.log.WithContext(ctx)

	exists, err := s.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return transport.UserResponse{}, err
	}
	if exists {
		log.AuthEvent("register", email, false, "duplicate")
		return transport.UserResponse{}, apperr.BadRequest(msgUserExists)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return transport.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	var referral *string
	if req.Referral != nil && strings.TrimSpace(*req.Referral) != "" {
		r := strings.TrimSpace(*req.Referral)
		referral = &r
	}

	user, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
		Email:        email,
		Username:     username,
		Phone:        phone.NormalizeE164(req.Phone, s.cfg.GetPhoneDefaultRegion()),
		PasswordHash: hash,
		Referral:     referral,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		log.AuthEvent("register", email, false, "duplicate")
		return transport.UserResponse{}, apperr.BadRequest(msgUserExists)
	}
	if err != nil {
		return transport.UserResponse{}, err
	}

	log.AuthEvent("register", email, true, "")
	return toUserResponse(user), nil
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	log := s.log.WithContext(ctx)

	user, err := s.repo.GetUserByIdentifier(ctx, identifier)
	if errors.Is(err, repository.ErrNotFound) {
		log.AuthEvent("login", identifier, false, "unknown user")
		return transport.LoginResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return transport.LoginResponse{}, err
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		log.AuthEvent("login", identifier, false, "wrong password")
		return transport.LoginResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	accessToken, err := token.SignAccess(user.ID, s.cfg.GetJWTAccessSecret(), s.cfg.GetAccessTokenTTL(), s.now())
	if err != nil {
		return transport.LoginResponse{}, fmt.Errorf("sign access token: %w", err)
	}

	log.AuthEvent("login", identifier, true, "")
	return transport.LoginResponse{UserID: user.ID.String(), AccessToken: accessToken}, nil
}

// Account returns the profile of userID.
func (s *Service) Account(ctx context.Context, userID uuid.UUID) (transport.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.UserResponse{}, apperr.NotFound(msgUserNotFound)
	}
	if err != nil {
		return transport.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}
