package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/mritunjay-thakur/clothify/internal/app"
	"github.com/mritunjay-thakur/clothify/internal/config"
	"github.com/mritunjay-thakur/clothify/internal/sdk/sqldb"
	"github.com/mritunjay-thakur/clothify/internal/services/avatar"
	"github.com/mritunjay-thakur/clothify/internal/services/hash"
	"github.com/mritunjay-thakur/clothify/internal/services/oauth"
	"github.com/mritunjay-thakur/clothify/internal/services/sentry"
	"github.com/mritunjay-thakur/clothify/internal/services/session"
	"github.com/mritunjay-thakur/clothify/internal/services/token"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("GOMAXPROCS", "cpu", runtime.GOMAXPROCS(0))

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// 2. Initialize Database
	dbService, err := sqldb.New(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer dbService.Close()

	// 3. Initialize Services
	hashService := hash.NewHashService()
	tokenService := token.NewTokenService(cfg.App.JWTSecret, cfg.App.SessionTTL)
	cookieManager := session.NewManager(cfg.App.SessionTTL, cfg.IsProduction())
	avatarService := avatar.NewService(cfg.Minio)
	googleService := oauth.Setup(cfg.OAuth, cfg.App.JWTSecret, cfg.IsProduction())
	sentryReporter := sentry.NewReporter(cfg.Sentry)
	defer sentryReporter.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := avatarService.EnsureBucket(ctx); err != nil {
			logger.Warn("avatar bucket unavailable, uploads disabled", "error", err)
		}
		cancel()
	}

	// 4. Initialize App
	application := app.NewApp(cfg, logger, dbService, hashService, tokenService,
		cookieManager, avatarService, googleService, sentryReporter)

	// 5. Configure Server
	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      application.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 6. Graceful Shutdown Logic
	done := make(chan bool, 1)
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down gracefully, press Ctrl+C again to force")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server forced to shutdown", "error", err)
		}
		done <- true
	}()

	// 7. Start Server
	logger.Info("Starting server", "addr", srv.Addr, "env", cfg.App.Env)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}

	<-done
	logger.Info("Graceful shutdown complete")
	return nil
}
