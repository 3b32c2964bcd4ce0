package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/staysharp/booking-api/internal/timezone"
)

type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration
	LogLevel        string
	CORSOrigins     []string

	// Database
	DBUrl          string
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxIdle  time.Duration
	DBSecretID     string
	AWSRegion      string

	// Scheduling
	DefaultUTCOffset       string
	SlotGranularityMinutes int
	EnforceBookingWindow   bool

	// Reference data cache
	RedisURL string
	CacheTTL time.Duration

	// Barber photos
	PhotoBucket          string
	PhotoEndpoint        string
	PhotoAccessKeyID     string
	PhotoSecretAccessKey string
	PhotoURLTTL          time.Duration
}

// Load reads the process environment, overlaid by an optional .env file in
// the working directory. Variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", getEnv("PORT", "8080")),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),

		DBUrl:      getEnv("DATABASE_URL", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "staysharp"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBSSLMode:  getEnv("DB_SSLMODE", "require"),
		DBSecretID: getEnv("DB_SECRET_ID", ""),
		AWSRegion:  getEnv("AWS_REGION", getEnv("AWS_DEFAULT_REGION", "us-west-2")),

		DefaultUTCOffset: getEnv("DEFAULT_UTC_OFFSET", "-08:00"),
		RedisURL:         getEnv("REDIS_URL", ""),

		PhotoBucket:          getEnv("PHOTO_BUCKET", ""),
		PhotoEndpoint:        getEnv("PHOTO_ENDPOINT", ""),
		PhotoAccessKeyID:     getEnv("PHOTO_ACCESS_KEY_ID", ""),
		PhotoSecretAccessKey: getEnv("PHOTO_SECRET_ACCESS_KEY", ""),
	}

	var err error
	if cfg.DBMaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", 5); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.SlotGranularityMinutes, err = getInt("SLOT_GRANULARITY_MINUTES", 15); err != nil {
		return nil, err
	}
	if cfg.EnforceBookingWindow, err = getBool("ENFORCE_BOOKING_WINDOW", false); err != nil {
		return nil, err
	}
	if cfg.DBConnMaxIdle, err = getDuration("DB_CONN_MAX_IDLE", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.PhotoURLTTL, err = getDuration("PHOTO_URL_TTL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := timezone.ParseOffset(c.DefaultUTCOffset); err != nil {
		return fmt.Errorf("DEFAULT_UTC_OFFSET: %w", err)
	}
	if c.SlotGranularityMinutes <= 0 {
		return fmt.Errorf("SLOT_GRANULARITY_MINUTES must be positive, got %d", c.SlotGranularityMinutes)
	}
	if c.DBMaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DBMaxOpenConns)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) SlotGranularity() time.Duration {
	return time.Duration(c.SlotGranularityMinutes) * time.Minute
}

// DSN builds a postgres connection string for the given credentials.
// DATABASE_URL, when set, is returned untouched.
func (c *Config) DSN(user, password string) string {
	if c.DBUrl != "" {
		return c.DBUrl
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
