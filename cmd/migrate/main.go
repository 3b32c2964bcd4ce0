package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/staysharp/booking-api/internal/config"
	dbpkg "github.com/staysharp/booking-api/internal/db"
	"github.com/staysharp/booking-api/internal/secrets"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo reference data when the store is empty")
	createDB := flag.Bool("create-db", false, "create DB_NAME on the server when missing")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "booking-migrate")

	if err := run(logger, *createDB, *seed); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}
	logger.Info("migration complete")
}

func run(logger *slog.Logger, createDB, seed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var provider secrets.Provider = secrets.Static{Username: cfg.DBUser, Password: cfg.DBPassword}
	if cfg.DBSecretID != "" {
		if provider, err = secrets.NewSecretsManager(ctx, cfg.AWSRegion, cfg.DBSecretID); err != nil {
			return err
		}
	}

	if createDB {
		if err := dbpkg.EnsureDatabase(ctx, cfg, provider); err != nil {
			return err
		}
		logger.Info("database ready", "db", cfg.DBName)
	}

	db, err := dbpkg.NewDB(ctx, cfg, provider)
	if err != nil {
		return err
	}
	defer dbpkg.Close(db)

	if err := dbpkg.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("schema migrated")

	if seed {
		if err := dbpkg.Seed(ctx, db); err != nil {
			return err
		}
		logger.Info("seed applied")
	}
	return nil
}
