package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventsnow/backend/internal/config"
	"github.com/eventsnow/backend/internal/domain"
)

// Claims is the payload embedded in a session token: just enough to
// identify the principal. Never the email, never anything derived from
// the password.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies signed session tokens with a server-held
// secret. Construction fails when no secret is configured so the
// process can never sign with a default key.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(cfg *config.Config) (*Tokens, error) {
	if cfg.JWTSecret == "" {
		return nil, domain.ErrMissingSecret
	}
	return &Tokens{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.JWTExpirationHours) * time.Hour,
	}, nil
}

func (t *Tokens) Issue(userID, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the decoded
// claims. Expiry is reported as domain.ErrTokenExpired; every other
// failure (bad signature, wrong algorithm, malformed payload) folds
// into domain.ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
