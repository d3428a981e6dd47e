package service

import (
	"context"
	"errors"
	"time"

	"github.com/eventsnow/backend/internal/auth"
	"github.com/eventsnow/backend/internal/domain"
	"github.com/eventsnow/backend/internal/repository"
)

type AccountService struct {
	users  repository.UserRepository
	hasher *auth.Hasher
	tokens *auth.Tokens
}

func NewAccountService(users repository.UserRepository, hasher *auth.Hasher, tokens *auth.Tokens) *AccountService {
	return &AccountService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	var missing domain.FieldErrors
	if input.Name == "" {
		missing = append(missing, "name is required")
	}
	if input.Email == "" {
		missing = append(missing, "email is required")
	}
	if input.Password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		return nil, missing
	}

	// Pre-read for a friendly error before any hashing work. The
	// unique index on email is the guarantee if two registrations race
	// past this check.
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrDuplicateAccount
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Avatar:       auth.AvatarURL(input.Email),
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a session token. A lookup
// miss and a password mismatch both come back as
// domain.ErrInvalidCredentials so the response never reveals whether
// the email is registered.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (string, error) {
	var missing domain.FieldErrors
	if input.Email == "" {
		missing = append(missing, "email is required")
	}
	if input.Password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		return "", missing
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Check(input.Password, user.PasswordHash); err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID.Hex(), user.Name)
}

// CurrentUser re-fetches the canonical user record for the id carried
// in a verified token's claims.
func (s *AccountService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
