// Package token issues the HS256 access tokens that httpkit.AuthRequired
// accepts.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"givehope_backend/platform/httpkit"
)

// SignAccess returns a signed access token for userID valid for ttl from now.
func SignAccess(userID uuid.UUID, secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": httpkit.AccessTokenType,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(secret))
}
