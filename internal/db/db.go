package db

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/staysharp/booking-api/internal/config"
	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/secrets"
)

// NewDB opens the pooled store handle. Credentials are fetched once from
// provider unless DATABASE_URL carries them.
func NewDB(ctx context.Context, cfg *config.Config, provider secrets.Provider) (*gorm.DB, error) {
	dsn, err := resolveDSN(ctx, cfg, provider, cfg.DBName)
	if err != nil {
		return nil, err
	}
	return open(ctx, dsn, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxIdle)
}

func resolveDSN(ctx context.Context, cfg *config.Config, provider secrets.Provider, dbName string) (string, error) {
	if cfg.DBUrl != "" {
		return cfg.DBUrl, nil
	}

	creds, err := provider.DBCredentials(ctx)
	if err != nil {
		return "", err
	}

	c := *cfg
	c.DBName = dbName
	return c.DSN(creds.Username, creds.Password), nil
}

func open(ctx context.Context, dsn string, maxOpen, maxIdle int, maxIdleTime time.Duration) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, httperr.Unavailable("store_unavailable", "failed to connect database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Ping(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Ping round-trips SELECT 1 through the pool.
func Ping(ctx context.Context, db *gorm.DB) error {
	var one int
	if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return httperr.Unavailable("store_unavailable", "database unreachable", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var dbNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidDBName reports whether name can be interpolated into CREATE DATABASE.
func ValidDBName(name string) bool {
	return dbNamePattern.MatchString(name)
}

// EnsureDatabase connects to the "postgres" maintenance database and
// creates cfg.DBName when it does not exist yet.
func EnsureDatabase(ctx context.Context, cfg *config.Config, provider secrets.Provider) error {
	if cfg.DBUrl != "" {
		return nil
	}
	if !ValidDBName(cfg.DBName) {
		return fmt.Errorf("unsafe DB_NAME %q", cfg.DBName)
	}

	dsn, err := resolveDSN(ctx, cfg, provider, "postgres")
	if err != nil {
		return err
	}
	admin, err := open(ctx, dsn, 2, 1, cfg.DBConnMaxIdle)
	if err != nil {
		return err
	}
	defer Close(admin)

	var exists int64
	if err := admin.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", cfg.DBName).
		Scan(&exists).Error; err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	// CREATE DATABASE cannot take a bind parameter; the name is validated above.
	return admin.WithContext(ctx).Exec("CREATE DATABASE " + cfg.DBName).Error
}
