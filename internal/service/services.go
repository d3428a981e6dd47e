package service

import (
	"github.com/eventsnow/backend/internal/auth"
	"github.com/eventsnow/backend/internal/config"
	"github.com/eventsnow/backend/internal/repository"
)

type Services struct {
	Account *AccountService
	Event   *EventService
}

func NewServices(repos *repository.Repositories, tokens *auth.Tokens, hasher *auth.Hasher, cfg *config.Config) (*Services, error) {
	events, err := NewEventService(repos.Event, cfg.EventCacheTTL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Account: NewAccountService(repos.User, hasher, tokens),
		Event:   events,
	}, nil
}
