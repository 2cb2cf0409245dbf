// filepath: internal/services/auth/token_service.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopfront/internal/config"
)

// accessClaims defines the custom claims for the short-lived access token.
type accessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates admin access tokens. There is a single
// admin actor, so tokens are stateless and carry only the username.
type TokenService interface {
	GenerateToken(username string) (string, error)
	ValidateToken(tokenString string) (string, error)
}

// Compile-time check to ensure tokenService implements the TokenService interface.
var _ TokenService = (*tokenService)(nil)

type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

// GenerateToken creates and signs a new access token.
func (s *tokenService) GenerateToken(username string) (string, error) {
	durationMin := s.cfg.JWT.AccessDurationMin
	if durationMin <= 0 {
		durationMin = 60
	}
	expiry := time.Now().Add(time.Minute * time.Duration(durationMin))
	claims := &accessClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			Issuer:    "shopfront",
			Subject:   username,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks an access token's signature and expiry and returns the
// username it was issued to.
func (s *tokenService) ValidateToken(tokenString string) (string, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", err // Handles expired tokens as well
	}
	if !token.Valid {
		return "", errors.New("invalid access token")
	}
	return claims.Username, nil
}
