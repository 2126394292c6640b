// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mahalla-hub/community-services/internal/auth"
	"github.com/mahalla-hub/community-services/internal/config"
	"github.com/mahalla-hub/community-services/internal/database"
	"github.com/mahalla-hub/community-services/internal/handler"
	"github.com/mahalla-hub/community-services/internal/repository"
	"github.com/mahalla-hub/community-services/internal/repository/memory"
	"github.com/mahalla-hub/community-services/internal/repository/postgres"
	"github.com/mahalla-hub/community-services/internal/service"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	log, err := newLogger(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// ── 1. Pick the persistence backend ──────────────────────────────────
	var store repository.Store
	switch cfg.Store {
	case "memory":
		mem := memory.New()
		mem.Seed()
		store = mem
		log.Info("using in-memory store with seed data")
	default:
		if err := database.Migrate(cfg); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
		pool, err := database.NewPool(ctx, cfg)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()
		store = postgres.New(pool)
		log.Info("connected to postgres",
			zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("token manager", zap.Error(err))
	}

	authSvc := service.NewAuthService(store.Users(), tokens)
	courseSvc := service.NewCourseService(store.Courses())
	entSvc := service.NewEntrepreneurService(store.Entrepreneurs())
	unSvc := service.NewUnemployedService(store.Unemployed())

	if err := authSvc.ProvisionAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("admin provisioning failed", zap.Error(err))
	}

	r := handler.NewRouter(log, tokens, cfg.CORSOrigins, handler.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Courses:       handler.NewCourseHandler(courseSvc),
		Entrepreneurs: handler.NewEntrepreneurHandler(entSvc),
		Unemployed:    handler.NewUnemployedHandler(unSvc),
	})

	// ── 3. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
