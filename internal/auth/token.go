// internal/auth/token.go
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/foodyhq/backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies the signed session credential. Tokens are
// stateless; the user row is re-fetched on every use, so deleting a user
// invalidates outstanding tokens without a revocation list.
type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
	}
}

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Issue produces a signed credential embedding the user id and issue time.
// The expiry matches the session cookie's max-age, so a token replayed
// outside the cookie does not outlive it.
func (tm *TokenManager) Issue(userID int64) (string, error) {
	claims := Claims{
		UserID: strconv.FormatInt(userID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify checks the signature and structural shape of a credential and
// returns the embedded user id. Any malformed, unsigned, tampered, or
// expired token yields domain.ErrInvalidToken.
func (tm *TokenManager) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil || userID <= 0 {
		return 0, domain.ErrInvalidToken
	}

	return userID, nil
}
