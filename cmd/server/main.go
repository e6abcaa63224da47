package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/sungminna/exchange-credentials/internal/api/router"
	"github.com/sungminna/exchange-credentials/internal/config"
	credpostgres "github.com/sungminna/exchange-credentials/internal/infrastructure/postgres"
	"github.com/sungminna/exchange-credentials/internal/logging"
	"github.com/sungminna/exchange-credentials/internal/migrations"
	"github.com/sungminna/exchange-credentials/internal/service/credential"
	"github.com/sungminna/exchange-credentials/pkg/database/postgres"
	"github.com/sungminna/exchange-credentials/pkg/ratelimit"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("server exited with error")
	}
}

func run() error {
	// Configuration file is optional; env overrides and defaults cover the rest
	cfg, err := config.LoadAndValidate(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Log, os.Stdout); err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, postgres.ConfigFrom(cfg.Database))
	if err != nil {
		return err
	}
	defer postgres.Close(pool)

	if err := migrations.PostgresUp(migrations.FromPool(pool)); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	store := credpostgres.NewCredentialStore(pool, cfg.Server.StoreTimeout)
	repo := credential.NewRepository(store)

	routerCfg := &router.Config{Repository: repo}
	if rps := cfg.Server.RequestsPerSecond(); rps > 0 {
		limiter := ratelimit.NewClientLimiter(rps, limiterIdleTTL)
		go limiter.Run(ctx, limiterSweepInterval)
		routerCfg.Limiter = limiter
	} else {
		log.Warn("rate limiting disabled")
	}

	r := router.Setup(routerCfg)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Server.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}
