package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adrewards/internal/adapter/postgres"
	"adrewards/internal/adapter/usecase"
	"adrewards/internal/cache"
	"adrewards/internal/config"
	"adrewards/internal/db"

	httpadapter "adrewards/internal/adapter/http"
)

// main is the entry point of the rewards service. It loads
// configuration, optionally runs database migrations and seeds demo
// data, wires the repositories and usecases, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts the
// server down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	redisClient, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()
	limiter := cache.NewLoginLimiter(redisClient,
		time.Duration(cfg.Auth.LoginWindowSeconds)*time.Second, cfg.Auth.LoginMaxAttempts)

	campaignRepo := postgres.NewCampaignRepository(pool)
	clickRepo := postgres.NewClickRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	clickSvc := usecase.NewClickUseCase(campaignRepo, clickRepo)
	authSvc := usecase.NewAuthUseCase(userRepo, limiter, cfg.Auth)
	campaignSvc := usecase.NewCampaignUseCase(campaignRepo, clickRepo)
	rewardsSvc := usecase.NewRewardsUseCase(clickRepo)

	handler := httpadapter.NewHandler(clickSvc, authSvc, campaignSvc, rewardsSvc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
