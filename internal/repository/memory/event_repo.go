package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventsnow/backend/internal/domain"
)

type eventRepository struct {
	mu     sync.RWMutex
	events []*domain.Event
}

func NewEventRepository() *eventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.Name == event.Name {
			return domain.ErrDuplicateEvent
		}
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}

	clone := *event
	r.events = append(r.events, &clone)
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID.Hex() == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *eventRepository) FindByName(ctx context.Context, name string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.Name == name {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *eventRepository) FindByType(ctx context.Context, eventType domain.EventType) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domain.Event, 0)
	for _, e := range r.events {
		if e.Type == eventType {
			clone := *e
			matches = append(matches, &clone)
		}
	}
	return matches, nil
}
