package transport

import "time"

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=254"`
	Username string  `json:"username" validate:"required,min=2,max=50"`
	Phone    string  `json:"phone" validate:"required,max=32"`
	Password string  `json:"password" validate:"required,max=72"`
	Referral *string `json:"referral,omitempty" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
	Password   string `json:"password" validate:"required,max=72"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

type AccountResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
