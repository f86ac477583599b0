package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/challengehub/challengehub-backend/internal/api"
	"github.com/challengehub/challengehub-backend/internal/auth"
	"github.com/challengehub/challengehub-backend/internal/config"
	"github.com/challengehub/challengehub-backend/internal/db"
	"github.com/challengehub/challengehub-backend/internal/logger"
	"github.com/challengehub/challengehub-backend/internal/metrics"
	"github.com/challengehub/challengehub-backend/internal/repository/postgres"
	"github.com/challengehub/challengehub-backend/internal/services"
	"github.com/challengehub/challengehub-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, 15*time.Minute, 7*24*time.Hour)
	userSvc := services.NewUserService(repos.Users, repos.AuditLogs, tm, wp)
	challengeSvc := services.NewChallengeService(repos.Challenges, repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(cfg, tm, userSvc, challengeSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
