package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by NOEMA_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("NOEMA_ENV")
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

// DatabaseURL returns the Postgres connection string for the optional
// thought archive. Empty means archiving is disabled.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// DefaultLanguage is the language used when a request names none.
// Defaults to "en". Valid values: en, ru
func DefaultLanguage() string {
	lang := os.Getenv("DEFAULT_LANGUAGE")
	if lang == "" {
		return "en"
	}
	return lang
}

// AnalysisProvider selects the text-analysis capability backend.
// Defaults to "local". Valid values: local, none
func AnalysisProvider() string {
	p := os.Getenv("ANALYSIS_PROVIDER")
	if p == "" {
		return "local"
	}
	return p
}

// LogLevel returns the zap log level name. Defaults to "info".
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil {
		return 20
	}
	return burst
}
