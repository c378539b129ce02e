package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/sahils38/gripinvest-winter-internship/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/sahils38/gripinvest-winter-internship/internal/errors"
)

type TokenGenerator interface {
	Generate(subject string) (string, error)
	Verify(tokenString string) (string, error)
}

// TokenService issues and verifies stateless HS256 bearer tokens. The
// subject claim carries the user's email; validity is determined purely by
// signature and expiry, there is no server-side revocation.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(subject string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the token and returns its subject. Malformed
// input, a bad signature and expiry all collapse into ErrInvalidToken; the
// caller treats them uniformly as unauthenticated.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil || !token.Valid {
		return "", autherror.ErrInvalidToken
	}

	return claims.Subject, nil
}
