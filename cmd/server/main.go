package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventsnow/backend/internal/api"
	"github.com/eventsnow/backend/internal/auth"
	"github.com/eventsnow/backend/internal/config"
	"github.com/eventsnow/backend/internal/logutil"
	"github.com/eventsnow/backend/internal/repository/mongodb"
	"github.com/eventsnow/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logutil.Setup("")
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logutil.Setup(cfg.Environment)

	// A broken store or missing secret is fatal: the process must not
	// start serving.
	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}
	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongodb")

	repos := mongodb.NewRepositories(db)

	tokens, err := auth.NewTokens(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize token signer")
	}
	hasher := auth.NewHasher(cfg.BcryptCost)

	services, err := service.NewServices(repos, tokens, hasher, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize services")
	}

	router := api.NewRouter(services, tokens, logger)

	srv := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("mongodb disconnect failed")
	}

	logger.Info().Msg("server stopped")
}
