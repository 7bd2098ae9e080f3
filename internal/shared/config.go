package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration

	// Seeder defaults; overridable via flags on cmd/seed.
	SeedUsers    int
	SeedListings int
	SeedBookings int
	SeedReviews  int
	SeedWorkers  int
	SeedRate     int // writes per second
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: envAllowEmpty("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/travel?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,

		SeedUsers:    atoi("SEED_USERS", 10),
		SeedListings: atoi("SEED_LISTINGS", 20),
		SeedBookings: atoi("SEED_BOOKINGS", 30),
		SeedReviews:  atoi("SEED_REVIEWS", 50),
		SeedWorkers:  atoi("SEED_WORKERS", 8),
		SeedRate:     atoi("SEED_RATE", 50),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envAllowEmpty keeps a set-but-empty value, so METRICS_ADDR="" disables
// the standalone metrics listener instead of falling back to the default.
func envAllowEmpty(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}
