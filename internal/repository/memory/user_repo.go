// Package memory holds mutex-guarded map implementations of the
// repository interfaces. The test suite runs against these so it needs
// no database; they also back local development.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventsnow/backend/internal/domain"
	"github.com/eventsnow/backend/internal/repository"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by hex ID
}

func NewUserRepository() *userRepository {
	return &userRepository{users: make(map[string]*domain.User)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateAccount
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	clone := *user
	r.users[user.ID.Hex()] = &clone
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:  NewUserRepository(),
		Event: NewEventRepository(),
	}
}
