package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/api"
	"github.com/superfood-sragen/storefront-system/internal/api/metrics"
	"github.com/superfood-sragen/storefront-system/internal/infrastructure/config"
	mongodb "github.com/superfood-sragen/storefront-system/internal/infrastructure/db/mongo"
	redisdb "github.com/superfood-sragen/storefront-system/internal/infrastructure/db/redis"
	"github.com/superfood-sragen/storefront-system/pkg/logger"

	_ "github.com/superfood-sragen/storefront-system/docs" // Swagger docs
)

// @title Superfood Sragen Storefront API
// @version 1.0
// @description Backend for the Superfood Sragen storefront: catalog, promos, accounts and WhatsApp checkout.

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoClient, db, err := mongodb.Connect(connectCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	rdb, err := redisdb.Connect(connectCtx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	app := api.NewRouter(cfg, log, db, rdb)

	if err := app.EnsureIndexes(connectCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// Nightly promo expiry sweep: promos whose end date has passed stop
	// showing as active without waiting for an admin to notice.
	sweeper := cron.New()
	cronLog := logger.Component("cron")
	if _, err := sweeper.AddFunc("30 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := app.Promos.DeactivateExpired(ctx)
		if err != nil {
			cronLog.Error().Err(err).Msg("promo expiry sweep failed")
			return
		}
		metrics.PromosExpiredTotal.Add(float64(n))
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule promo expiry sweep")
	}
	sweeper.Start()
	defer sweeper.Stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := app.Echo.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.Echo.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	log.Info().Msg("server stopped")
}
