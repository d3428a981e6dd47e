package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/eventsnow/backend/internal/api/handlers"
	"github.com/eventsnow/backend/internal/api/middleware"
	"github.com/eventsnow/backend/internal/auth"
	"github.com/eventsnow/backend/internal/service"
)

func NewRouter(services *service.Services, tokens *auth.Tokens, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.AllowAll().Handler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Events Now booking backend"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Account)
	eventHandler := handlers.NewEventHandler(services.Event)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))
			r.Get("/me", authHandler.Me)
		})
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/free", eventHandler.Free)
		r.Get("/pro", eventHandler.Pro)
		r.Get("/{eventId}", eventHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))
			r.Post("/upload", eventHandler.Upload)
		})
	})

	return r
}
