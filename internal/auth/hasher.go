package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventsnow/backend/internal/domain"
)

// Hasher wraps bcrypt with a configurable work factor.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash transforms a plaintext secret into an opaque, salted hash safe
// to persist.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check returns nil when plaintext reproduces the stored hash,
// domain.ErrInvalidCredentials on a mismatch, and
// domain.ErrCorruptCredential when the stored value is not a bcrypt
// hash at all.
func (h *Hasher) Check(plaintext, stored string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrInvalidCredentials
	default:
		return domain.ErrCorruptCredential
	}
}
