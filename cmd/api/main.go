package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staysharp/booking-api/internal/audit"
	"github.com/staysharp/booking-api/internal/config"
	dbpkg "github.com/staysharp/booking-api/internal/db"
	"github.com/staysharp/booking-api/internal/infra/cache"
	"github.com/staysharp/booking-api/internal/infra/storage"
	"github.com/staysharp/booking-api/internal/routes"
	"github.com/staysharp/booking-api/internal/secrets"
	"github.com/staysharp/booking-api/internal/usecase/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------------------------
	// Store
	// ------------------------------
	provider, err := credentialProvider(ctx, cfg)
	if err != nil {
		return err
	}

	db, err := dbpkg.NewDB(ctx, cfg, provider)
	if err != nil {
		return err
	}
	defer dbpkg.Close(db)

	// ------------------------------
	// Optional cache and photo URLs
	// ------------------------------
	var catalogCache catalog.Cache
	if cfg.RedisURL != "" {
		rdb, err := cache.Open(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", "err", err)
		} else {
			defer rdb.Close()
			catalogCache = cache.NewRedisCache(rdb, cfg.CacheTTL, "booking", logger)
		}
	}

	var photos catalog.PhotoURLs
	if cfg.PhotoBucket != "" {
		store, err := storage.NewPhotoStore(ctx, storage.PhotoConfig{
			Bucket:          cfg.PhotoBucket,
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.PhotoEndpoint,
			AccessKeyID:     cfg.PhotoAccessKeyID,
			SecretAccessKey: cfg.PhotoSecretAccessKey,
			URLTTL:          cfg.PhotoURLTTL,
		})
		if err != nil {
			return err
		}
		photos = store
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	// ------------------------------
	// HTTP
	// ------------------------------
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if err := routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Logger: logger,
		Cache:  catalogCache,
		Photos: photos,
		Audit:  dispatcher,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn("audit queue not drained", "err", err)
	}

	logger.Info("http server stopped")
	return nil
}

func credentialProvider(ctx context.Context, cfg *config.Config) (secrets.Provider, error) {
	if cfg.DBSecretID != "" {
		return secrets.NewSecretsManager(ctx, cfg.AWSRegion, cfg.DBSecretID)
	}
	return secrets.Static{Username: cfg.DBUser, Password: cfg.DBPassword}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("service", "booking-api")
}
