package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventsnow/backend/internal/api"
	"github.com/eventsnow/backend/internal/auth"
	"github.com/eventsnow/backend/internal/config"
	"github.com/eventsnow/backend/internal/repository"
	"github.com/eventsnow/backend/internal/repository/memory"
	"github.com/eventsnow/backend/internal/service"
)

// TestConfig returns a configuration suitable for testing. The bcrypt
// cost is the minimum so the suite stays fast.
func TestConfig() *config.Config {
	return &config.Config{
		Host:               "127.0.0.1",
		Port:               "0",
		Environment:        "test",
		MongoURI:           "mongodb://unused-in-tests",
		MongoDatabase:      "eventsnow_test",
		JWTSecret:          "test-jwt-secret-key-for-testing-only",
		JWTExpirationHours: 1,
		BcryptCost:         4,
		EventCacheTTL:      time.Second,
	}
}

// TestServer wires the full router over in-memory repositories.
type TestServer struct {
	Handler  http.Handler
	Repos    *repository.Repositories
	Services *service.Services
	Tokens   *auth.Tokens
	Hasher   *auth.Hasher
	Config   *config.Config
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig()
	repos := memory.NewRepositories()

	tokens, err := auth.NewTokens(cfg)
	if err != nil {
		t.Fatalf("failed to create token signer: %v", err)
	}
	hasher := auth.NewHasher(cfg.BcryptCost)

	services, err := service.NewServices(repos, tokens, hasher, cfg)
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}

	return &TestServer{
		Handler:  api.NewRouter(services, tokens, zerolog.Nop()),
		Repos:    repos,
		Services: services,
		Tokens:   tokens,
		Hasher:   hasher,
		Config:   cfg,
	}
}
