package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/accesshub/accesshub/internal/shared"
)

// TokenManager issues and verifies signed bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager signing with the given secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token asserting the given identity.
func (m *TokenManager) Issue(identity shared.Identity) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("token secret is empty")
	}
	now := time.Now()
	claims := tokenClaims{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses the token and returns the identity it asserts. Any parse,
// signature or expiry failure yields ErrUnauthenticated.
func (m *TokenManager) Verify(tokenStr string) (*shared.Identity, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, shared.ErrUnauthenticated
	}
	claims, ok := tok.Claims.(*tokenClaims)
	if !ok || claims.UserID == 0 || !shared.ValidRole(shared.Role(claims.Role)) {
		return nil, shared.ErrUnauthenticated
	}
	return &shared.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     shared.Role(claims.Role),
	}, nil
}
