package repository

import (
	"context"

	"github.com/eventsnow/backend/internal/domain"
)

// IDs cross these interfaces as hex strings because that is what token
// claims and URL parameters carry; implementations parse them.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	FindByName(ctx context.Context, name string) (*domain.Event, error)
	FindByType(ctx context.Context, eventType domain.EventType) ([]*domain.Event, error)
}

type Repositories struct {
	User  UserRepository
	Event EventRepository
}
