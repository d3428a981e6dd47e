package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/eventsnow/backend/internal/domain"
	"github.com/eventsnow/backend/internal/repository"
)

// EventService fronts the read-heavy public listings with a short TTL
// cache; uploads drop the affected key so new events show up
// immediately.
type EventService struct {
	events repository.EventRepository
	cache  *bigcache.BigCache
}

func NewEventService(events repository.EventRepository, cacheTTL time.Duration) (*EventService, error) {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(cacheTTL))
	if err != nil {
		return nil, err
	}
	return &EventService{
		events: events,
		cache:  cache,
	}, nil
}

type UploadEventInput struct {
	Name  string
	Image string
	Price string
	Date  string
	Info  string
	Type  string
}

func (s *EventService) Upload(ctx context.Context, input UploadEventInput) (*domain.Event, error) {
	var missing domain.FieldErrors
	if input.Name == "" {
		missing = append(missing, "name is required")
	}
	if input.Image == "" {
		missing = append(missing, "image is required")
	}
	if input.Price == "" {
		missing = append(missing, "price is required")
	}
	if input.Date == "" {
		missing = append(missing, "date is required")
	}
	if input.Info == "" {
		missing = append(missing, "info is required")
	}
	eventType := domain.EventType(input.Type)
	if input.Type == "" {
		missing = append(missing, "type is required")
	} else if !eventType.Valid() {
		missing = append(missing, "type must be FREE or PRO")
	}
	if len(missing) > 0 {
		return nil, missing
	}

	_, err := s.events.FindByName(ctx, input.Name)
	if err == nil {
		return nil, domain.ErrDuplicateEvent
	}
	if !errors.Is(err, domain.ErrEventNotFound) {
		return nil, err
	}

	now := time.Now()
	event := &domain.Event{
		Name:      input.Name,
		Image:     input.Image,
		Price:     input.Price,
		Date:      input.Date,
		Info:      input.Info,
		Type:      eventType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(listCacheKey(event.Type))
	return event, nil
}

func (s *EventService) ListByType(ctx context.Context, eventType domain.EventType) ([]*domain.Event, error) {
	if buf, err := s.cache.Get(listCacheKey(eventType)); err == nil {
		var events []*domain.Event
		if err := json.Unmarshal(buf, &events); err == nil {
			return events, nil
		}
	}

	events, err := s.events.FindByType(ctx, eventType)
	if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(listCacheKey(eventType), buf)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func listCacheKey(eventType domain.EventType) string {
	return "events:" + string(eventType)
}
