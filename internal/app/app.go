package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/petcare-basedata/internal/auth"
	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/transport/middleware"
	"github.com/heartmarshall/petcare-basedata/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, opens the
// configured store, wires services into the HTTP router and serves until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Database.Driver),
		slog.String("rollback_mode", cfg.BaseData.RollbackMode),
		slog.String("concurrency_guard", cfg.BaseData.ConcurrencyGuard),
	)

	svc, err := OpenServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Config:     cfg,
		Logger:     logger,
		Tokens:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Limiter:    limiter,
		BaseData:   rest.NewBaseDataHandler(svc.BaseData, cfg.BaseData, logger),
		Dictionary: rest.NewDictionaryHandler(svc.Dictionary, cfg.BaseData, logger),
		Health:     rest.NewHealthHandler(svc.Pinger, cfg.Database.Driver, Version),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
