package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/financetrack/finance-api/internal/core/domain"
)

// sessionClaims binds the subject's user id to the standard claim set.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// JWTTokenService issues and verifies HS256 session tokens. Every token
// carries an expiry claim and verification rejects any other signing
// algorithm, so an attacker cannot downgrade to "none".
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTTokenService) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

func (s *JWTTokenService) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.UserID, nil
}
