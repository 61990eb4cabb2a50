package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/toolvault/catalog-api/internal/api"
	"github.com/toolvault/catalog-api/internal/core/service"
	"github.com/toolvault/catalog-api/internal/infrastructure/config"
	mongodb "github.com/toolvault/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/toolvault/catalog-api/internal/infrastructure/db/redis"
	"github.com/toolvault/catalog-api/internal/infrastructure/scheduler"
	"github.com/toolvault/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	// --- Repositories ---
	clientRepo := mongodb.NewClientRepository(db)
	toolRepo := mongodb.NewToolRepository(db)
	proposalRepo := mongodb.NewProposalRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"clients":       clientRepo.EnsureIndexes,
		"proposals":     proposalRepo.EnsureIndexes,
		"notifications": notificationRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("ensure indexes")
		}
	}

	// --- Services ---
	codec, err := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTLMillis)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec")
	}

	authService := service.NewAuthService(clientRepo, codec, log)
	notificationService := service.NewNotificationService(notificationRepo, clientRepo, log)
	proposalService := service.NewProposalService(proposalRepo, toolRepo, clientRepo, notificationService, log)
	toolService := service.NewToolService(toolRepo, log)

	// --- Scheduler ---
	sched := scheduler.New(proposalService, redisdb.NewJobLock(rdb), log)
	if err := sched.Start(cfg.Scheduler.PurgeCron, cfg.Scheduler.RemindCron); err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		AuthService:         authService,
		ProposalService:     proposalService,
		ToolService:         toolService,
		NotificationService: notificationService,
		Codec:               codec,
		Clients:             clientRepo,
		DB:                  db,
		Redis:               rdb,
		Log:                 log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	<-sched.Stop().Done()
}
