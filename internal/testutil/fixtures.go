package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventsnow/backend/internal/auth"
	"github.com/eventsnow/backend/internal/domain"
	"github.com/eventsnow/backend/internal/repository"
	"github.com/eventsnow/backend/internal/service"
)

// UserBuilder creates test users with a builder pattern.
type UserBuilder struct {
	name     string
	email    string
	password string
}

func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build persists the user and returns it with the raw password.
func (b *UserBuilder) Build(t *testing.T, users repository.UserRepository) (*domain.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now()
	user := &domain.User{
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashed),
		Avatar:       auth.AvatarURL(b.email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user, b.password
}

// BuildAndAuthenticate persists the user and logs it in, returning the
// user and a valid bearer token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.Repos.User)
	token, err := ts.Services.Account.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("failed to log in test user: %v", err)
	}
	return user, token
}

// EventBuilder creates test events.
type EventBuilder struct {
	name      string
	image     string
	price     string
	date      string
	info      string
	eventType domain.EventType
}

func NewEventBuilder() *EventBuilder {
	suffix := uuid.New().String()[:8]
	return &EventBuilder{
		name:      fmt.Sprintf("testevent_%s", suffix),
		image:     "https://example.com/event.png",
		price:     "0",
		date:      "2026-09-01",
		info:      "a test event",
		eventType: domain.EventFree,
	}
}

func (b *EventBuilder) WithName(name string) *EventBuilder {
	b.name = name
	return b
}

func (b *EventBuilder) WithType(eventType domain.EventType) *EventBuilder {
	b.eventType = eventType
	return b
}

func (b *EventBuilder) Build(t *testing.T, events repository.EventRepository) *domain.Event {
	t.Helper()

	now := time.Now()
	event := &domain.Event{
		Name:      b.name,
		Image:     b.image,
		Price:     b.price,
		Date:      b.date,
		Info:      b.info,
		Type:      b.eventType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	return event
}
