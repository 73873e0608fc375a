package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/comitanigiacomo/kanso-habits/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Env         string
	Port        string
	StoreDriver string

	DBDriver   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	SQLitePath string

	Redis      cache.Config
	RedisKey   string
	RateLimit  int
	RateWindow time.Duration

	Tracker services.TrackerConfig
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getInt("RATE_LIMIT", 100)
	if err != nil {
		return nil, err
	}
	editMs, err := getInt("EDIT_DEBOUNCE_MS", 300)
	if err != nil {
		return nil, err
	}
	uncheckMs, err := getInt("AUTO_UNCHECK_MS", 3000)
	if err != nil {
		return nil, err
	}
	undoMs, err := getInt("UNDO_WINDOW_MS", 5000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		StoreDriver: getEnv("STORE_DRIVER", StoreMemory),

		DBDriver:   getEnv("DB_DRIVER", "pgx"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     os.Getenv("DB_NAME"),
		SQLitePath: getEnv("SQLITE_PATH", "kanso.db"),

		Redis: cache.Config{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		RedisKey:   getEnv("REDIS_PREFIX", "kanso"),
		RateLimit:  rateLimit,
		RateWindow: time.Minute,

		Tracker: services.TrackerConfig{
			EditQuietPeriod:  time.Duration(editMs) * time.Millisecond,
			AutoUncheckDelay: time.Duration(uncheckMs) * time.Millisecond,
			UndoWindow:       time.Duration(undoMs) * time.Millisecond,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreRedis, StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q (must be memory, redis, postgres or sqlite)", c.StoreDriver)
	}

	if c.StoreDriver == StorePostgres && c.DBDriver != "pgx" && c.DBDriver != "postgres" {
		return fmt.Errorf("invalid DB_DRIVER %q (must be pgx or postgres)", c.DBDriver)
	}

	if c.Tracker.EditQuietPeriod <= 0 || c.Tracker.AutoUncheckDelay <= 0 || c.Tracker.UndoWindow <= 0 {
		return fmt.Errorf("timer durations must be positive")
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
