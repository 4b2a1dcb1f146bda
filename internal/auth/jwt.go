package auth

import (
	"time"

	"stockcount-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTTL is how long an issued token stays valid.
	TokenTTL = 14 * time.Hour
	// refreshWindow: tokens closer than this to expiry are transparently
	// re-issued by RefreshMiddleware.
	refreshWindow = 4 * time.Hour

	CookieName = "jwt"
)

type JWTCustomClaims struct {
	UserID   uint            `json:"user_id"`
	UserName string          `json:"user_name"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user *models.User) (string, error) {
	claims := &JWTCustomClaims{
		UserID:   user.ID,
		UserName: user.UserName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
