package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by GENEBLEND_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("GENEBLEND_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// DatabaseURL returns the Postgres DSN. Empty means in-memory stores.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// GeneticsPrior returns the default ancestry prior name.
// Valid values: uniform, mendelian
func GeneticsPrior() string {
	p := os.Getenv("GENETICS_PRIOR")
	if p == "" {
		return "uniform"
	}
	return p
}

func ParallelTraits() bool {
	v, err := strconv.ParseBool(os.Getenv("PARALLEL_TRAITS"))
	if err != nil {
		return false
	}
	return v
}

// CalculationTTL returns how long saved calculations live.
// Defaults to 24h. "0" keeps them forever.
func CalculationTTL() time.Duration {
	return duration("CALCULATION_TTL", 24*time.Hour)
}

// SweepInterval returns how often expired calculations are deleted.
// Defaults to 1h.
func SweepInterval() time.Duration {
	d := duration("SWEEP_INTERVAL", time.Hour)
	if d <= 0 {
		return time.Hour
	}
	return d
}

// AdminAPIKey returns the key guarding the content admin routes. Empty
// disables them.
func AdminAPIKey() string {
	return os.Getenv("ADMIN_API_KEY")
}

// DefaultLocale returns the fallback language for localized output.
// Defaults to "en".
func DefaultLocale() string {
	l := strings.TrimSpace(os.Getenv("DEFAULT_LOCALE"))
	if l == "" {
		return "en"
	}
	return l
}

func duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	if raw == "0" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return def
	}
	return d
}
