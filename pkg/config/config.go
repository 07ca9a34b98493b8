package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the strategy worker.
type Config struct {
	// gRPC worker
	WorkerPort        string
	WorkerConcurrency int
	StrategiesFile    string

	// Monitoring HTTP server
	MonitorPort string

	// Licensing
	LicenseSecret     string
	LicenseToken      string
	WorkerRequireAuth bool

	// License server
	LicensePort   string
	LicenseDBPath string

	// Alerts
	TelegramBotToken string
	TelegramChatID   string

	// Localization and logging
	Language string // "en" or "zh"
	LogLevel string
}

// Load reads environment variables (optionally via .env) into Config.
func Load() (*Config, error) {
	// Ignore error so the worker still starts when .env is missing.
	_ = godotenv.Load()

	return &Config{
		WorkerPort:        getEnv("WORKER_PORT", "50051"),
		WorkerConcurrency: getEnvInt("WORKER_CONCURRENCY", 2),
		StrategiesFile:    getEnv("STRATEGIES_FILE", "strategies.yaml"),
		MonitorPort:       getEnv("MONITOR_PORT", "8090"),
		LicenseSecret:     getEnv("LICENSE_SECRET", "dev-secret"),
		LicenseToken:      os.Getenv("LICENSE_TOKEN"),
		WorkerRequireAuth: getEnv("WORKER_REQUIRE_AUTH", "false") == "true",
		LicensePort:       getEnv("LICENSE_PORT", "8000"),
		LicenseDBPath:     getEnv("LICENSE_DB_PATH", "./data/licenses.db"),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    os.Getenv("TELEGRAM_CHAT_ID"),
		Language:          getEnv("LANGUAGE", "en"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
