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

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/cache/redis"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/postgres"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/postgres/account"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/postgres/agenda"
	invitationrepo "github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/postgres/invitation"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/adapter/provider/registry"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/auth"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/config"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/service/invitation"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/service/personnel"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/telemetry"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/transport/middleware"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/transport/rest"
)

const telemetryFlushTimeout = 5 * time.Second

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional personnel registry and cache, and serves the
// REST API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("database migrated", slog.Int("applied", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	health := rest.NewHealthHandler(pool, BuildVersion())

	lookup, closeCache, err := newPersonnelLookup(ctx, cfg, logger, health)
	if err != nil {
		return err
	}
	defer closeCache()

	accounts := account.New(pool)

	personnelSvc := personnel.NewService(logger, accounts, lookup)
	invitationSvc := invitation.NewService(
		logger,
		invitationrepo.New(pool),
		agenda.New(pool),
		accounts,
		personnelSvc,
		postgres.NewTxManager(pool),
		cfg.Invitation,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Limiter:     limiter,
		Validator:   auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Health:      health,
		Invitations: rest.NewInvitationHandler(invitationSvc, logger),
		ServiceName: cfg.Telemetry.ServiceName,
	})

	return serve(ctx, newServer(cfg.Server, router), cfg.Server.ShutdownTimeout, logger)
}

// newPersonnelLookup builds the registry client, wrapped in the Redis cache
// when one is configured. It returns a nil Lookuper when no registry is
// configured so that resolution relies on accounts alone.
func newPersonnelLookup(ctx context.Context, cfg *config.Config, logger *slog.Logger, health *rest.HealthHandler) (redis.Lookuper, func(), error) {
	noop := func() {}

	if !cfg.Registry.Enabled() {
		if cfg.Cache.Enabled() {
			logger.Warn("cache configured without a personnel registry; ignoring cache")
		}
		logger.Info("personnel registry disabled")
		return nil, noop, nil
	}

	var lookup redis.Lookuper = registry.New(cfg.Registry, logger)
	if !cfg.Cache.Enabled() {
		return lookup, noop, nil
	}

	cache, err := redis.New(ctx, cfg.Cache)
	if err != nil {
		return nil, noop, fmt.Errorf("connect to cache: %w", err)
	}
	health.WithComponent("cache", cache)

	closeCache := func() {
		if err := cache.Close(); err != nil {
			logger.Warn("close cache", slog.String("error", err.Error()))
		}
	}
	return redis.NewRegistry(lookup, cache, logger), closeCache, nil
}

func newServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
